package resolver

import "strings"

// ValidatePackageName checks the "@namespace/package" form.
func ValidatePackageName(name string) error {
	if !validPackageName(name) {
		return InvalidPackageName(name)
	}
	return nil
}

// ValidateTypeName checks the "@namespace/package::module::Type" form.
// Generic parameters after the type name are not inspected.
func ValidateTypeName(name string) error {
	if !strings.HasPrefix(name, "@") || !strings.Contains(name, "::") {
		return InvalidTypeName(name)
	}
	parts := strings.Split(name, "::")
	if len(parts) < 3 || !validPackageName(parts[0]) {
		return InvalidTypeName(name)
	}
	return nil
}

func validPackageName(name string) bool {
	rest, ok := strings.CutPrefix(name, "@")
	if !ok {
		return false
	}
	if strings.Count(rest, "/") != 1 {
		return false
	}
	ns, pkg, _ := strings.Cut(rest, "/")
	return ns != "" && pkg != ""
}
