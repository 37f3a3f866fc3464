package create

import "errors"

// ErrCLINotInstalled is returned when cluster creation is attempted without
// an installed minc CLI.
var ErrCLINotInstalled = errors.New("minc cli is not installed")
