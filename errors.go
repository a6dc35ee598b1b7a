package filefactory

import "errors"

// ErrEmptyName is returned when a call provides an empty file name.
var ErrEmptyName = errors.New("file name must not be empty")

// ErrUnsafeComponent is returned when a name or subdirectory component
// contains a path separator or a parent-directory reference. Components must
// be single path elements so resolved paths cannot escape the factory root.
var ErrUnsafeComponent = errors.New("path component must be a single element without separators or parent references")

// ErrUnsafeExtension is returned when a factory is constructed with an
// extension containing a path separator. Extensions stay within the file
// name, so resolved paths cannot escape the factory root.
var ErrUnsafeExtension = errors.New("extension must not contain path separators")

// ErrNilTransform is returned when a Processor is constructed without a
// transform function.
var ErrNilTransform = errors.New("transform function must not be nil")
