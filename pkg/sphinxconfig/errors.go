package sphinxconfig

import "errors"

// Sentinel errors for the sphinxconfig package
var (
	// ErrInvalidStyle indicates an unrecognized style value
	ErrInvalidStyle = errors.New("'style' must be one of: pep621, poetry")

	// ErrDynamicVersion indicates the manifest marks 'version' as dynamic,
	// which requires build-backend information this adapter does not have
	ErrDynamicVersion = errors.New("'version' is marked dynamic, which is unsupported by sphinx-pyproject")

	// ErrKeyNotFound indicates a lookup for a key absent from the effective configuration
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrBadMetadata indicates a generic-metadata value has the wrong type
	ErrBadMetadata = errors.New("metadata value has the wrong type")

	// ErrAuthorCommas indicates an author name containing commas, which Sphinx
	// would misread as multiple authors
	ErrAuthorCommas = errors.New("author name cannot contain commas")
)
