package types

import "errors"

// Translation errors. Callers match these with errors.Is; the wrapped
// message always names the offending value.
var (
	ErrUnknownFontWeight = errors.New("unknown font weight keyword")
	ErrUnknownFontRole   = errors.New("unknown typography role")
	ErrMissingFontFamily = errors.New("font specification has no family")
	ErrFamilyMismatch    = errors.New("font descriptors resolve to different families")
	ErrUnknownFontFormat = errors.New("unrecognized font file format")
)
