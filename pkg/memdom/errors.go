package memdom

import "fmt"

// DOMError is a host failure named after the web platform's DOMException
// it corresponds to. Callers that care about the failure class match on
// Name; the message carries the specifics.
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string {
	return e.Name + ": " + e.Message
}

// Code returns the legacy numeric DOMException code for the error's name,
// or 0 for names that never had one.
func (e *DOMError) Code() int {
	return domErrorCodes[e.Name]
}

// Legacy DOMException codes, per the WebIDL table.
var domErrorCodes = map[string]int{
	"IndexSizeError":        1,
	"HierarchyRequestError": 3,
	"WrongDocumentError":    4,
	"InvalidCharacterError": 5,
	"NotFoundError":         8,
	"NotSupportedError":     9,
	"InvalidStateError":     11,
	"SyntaxError":           12,
	"TypeMismatchError":     17,
}

func domErr(name, format string, args ...any) *DOMError {
	return &DOMError{Name: name, Message: fmt.Sprintf(format, args...)}
}
