// Package lang holds the localized API messages, one catalog per locale.
package lang

import "souq/models"

var messages = map[string]map[string]string{
	"en": {
		"categories.list_success":   "Categories retrieved successfully.",
		"categories.create_success": "Category created successfully.",
		"categories.show_success":   "Category retrieved successfully.",
		"categories.update_success": "Category updated successfully.",
		"categories.delete_success": "Category deleted successfully.",
		"categories.not_found":      "Category not found.",

		"products.list_success":   "Products retrieved successfully.",
		"products.create_success": "Product created successfully.",
		"products.show_success":   "Product retrieved successfully.",
		"products.update_success": "Product updated successfully.",
		"products.delete_success": "Product deleted successfully.",
		"products.not_found":      "Product not found.",

		"errors.validation": "The given data was invalid.",
		"errors.internal":   "Something went wrong.",
	},
	"ar": {
		"categories.list_success":   "تم استرجاع الفئات بنجاح.",
		"categories.create_success": "تم إنشاء الفئة بنجاح.",
		"categories.show_success":   "تم استرجاع الفئة بنجاح.",
		"categories.update_success": "تم تحديث الفئة بنجاح.",
		"categories.delete_success": "تم حذف الفئة بنجاح.",
		"categories.not_found":      "الفئة غير موجودة.",

		"products.list_success":   "تم استرجاع المنتجات بنجاح.",
		"products.create_success": "تم إنشاء المنتج بنجاح.",
		"products.show_success":   "تم استرجاع المنتج بنجاح.",
		"products.update_success": "تم تحديث المنتج بنجاح.",
		"products.delete_success": "تم حذف المنتج بنجاح.",
		"products.not_found":      "المنتج غير موجود.",

		"errors.validation": "البيانات المقدمة غير صالحة.",
		"errors.internal":   "حدث خطأ ما.",
	},
}

// T resolves a message key in the given locale, falling back to the
// default locale and then to the key itself.
func T(locale, key string) string {
	if catalog, ok := messages[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[models.DefaultLocale][key]; ok {
		return msg
	}
	return key
}
