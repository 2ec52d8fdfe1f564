package cart

import pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"

// ErrSessionRequired is returned when an operation has no session id to key the cart on.
var ErrSessionRequired = pkgerrors.New(pkgerrors.CodeValidation, "session id required")
