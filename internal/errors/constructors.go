package errors

import "strings"

// Load errors

func LoadError(path string, cause error) *DocError {
	return Wrap(cause, CategoryLoad, "failed to load API description").
		WithContext("path", path).
		withKind(ErrLoad)
}

func NoInputsError(pattern string) *DocError {
	return New(CategoryLoad, "input pattern matched no files").
		WithContext("pattern", pattern).
		withKind(ErrLoad)
}

func PackageConflictError(name, first, second string) *DocError {
	return New(CategoryLoad, "package described by more than one input").
		WithContext("package", name).
		WithContext("first", first).
		WithContext("second", second).
		withKind(ErrPackageConflict)
}

// Theme and render errors

func UnknownThemeError(theme string, available []string) *DocError {
	return New(CategoryTheme, "unknown theme").
		WithContext("theme", theme).
		WithContext("available", strings.Join(available, ",")).
		withKind(ErrUnknownTheme)
}

func UnknownKindError(pkg, export, kind string) *DocError {
	return New(CategoryRender, "unknown kind").
		WithContext("package", pkg).
		WithContext("export", export).
		WithContext("kind", kind).
		withKind(ErrUnknownKind)
}

func NameCollisionError(path, first, second string) *DocError {
	return New(CategoryRender, "two symbols map to the same page").
		WithContext("path", path).
		WithContext("first", first).
		WithContext("second", second).
		withKind(ErrNameCollision)
}

func BrokenLinkError(page, target string) *DocError {
	return New(CategoryValidation, "link does not resolve to a generated page").
		WithContext("page", page).
		WithContext("target", target).
		withKind(ErrBrokenLink)
}

// Filesystem errors

func FileSystemError(operation, path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Config errors

func ConfigError(message string, cause error) *DocError {
	return Wrap(cause, CategoryConfig, message)
}

func ValidationFailed(field, reason string) *DocError {
	return New(CategoryValidation, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func InternalError(message string, cause error) *DocError {
	return Wrap(cause, CategoryInternal, message)
}
