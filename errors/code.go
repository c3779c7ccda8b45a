package errors

import "sort"

// Message renders the text for a CodeError.
type Message func(code CodeError) string

var idMsgFct = make(map[CodeError]Message)

// CodeError is a numeric error classification modeled after HTTP status
// codes. Callers claim a contiguous range starting at some min code (see
// MinAvailable) and register one Message function that covers every code
// in that range via RegisterIdFctMessage.
type CodeError uint16

const (
	// UnknownError is the code used when no range claims a CodeError.
	UnknownError CodeError = 0

	// UnknownMessage is the message for UnknownError and for any code
	// whose range didn't produce a non-empty message.
	UnknownMessage = "unknown error"

	// NullMessage is an explicitly empty message.
	NullMessage = ""
)

func (c CodeError) Uint16() uint16 { return uint16(c) }

// Message returns the text registered for c's range, or UnknownMessage if
// no range covers it.
func (c CodeError) Message() string {
	if c == UnknownError {
		return UnknownMessage
	}

	if f, ok := idMsgFct[findCodeErrorInMapMessage(c)]; ok {
		if m := f(c); m != "" {
			return m
		}
	}

	return UnknownMessage
}

// Error builds an Error for this code, optionally wrapping parent causes.
func (c CodeError) Error(parent ...error) Error {
	return newError(c.Uint16(), c.Message(), parent...)
}

// IfError builds an Error for this code only if at least one parent is
// non-nil; otherwise it returns nil.
func (c CodeError) IfError(parent ...error) Error {
	return ifError(c.Uint16(), c.Message(), parent...)
}

// RegisterIdFctMessage registers fct as the message source for every code
// from minCode up to (but not including) the next registered range.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idMsgFct[minCode] = fct
	orderMapMessage()
}

// ExistInMapMessage reports whether code resolves to a non-empty message.
func ExistInMapMessage(code CodeError) bool {
	if f, ok := idMsgFct[findCodeErrorInMapMessage(code)]; ok {
		return f(code) != NullMessage
	}
	return false
}

func getMapMessageKey() []CodeError {
	keys := make([]int, 0, len(idMsgFct))
	for k := range idMsgFct {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	res := make([]CodeError, 0, len(keys))
	for _, k := range keys {
		res = append(res, CodeError(k))
	}
	return res
}

func orderMapMessage() {
	res := make(map[CodeError]Message, len(idMsgFct))
	for _, k := range getMapMessageKey() {
		res[k] = idMsgFct[k]
	}
	idMsgFct = res
}

// findCodeErrorInMapMessage returns the highest registered range key that
// is still <= code, i.e. the range code falls into.
func findCodeErrorInMapMessage(code CodeError) CodeError {
	var res CodeError
	for _, k := range getMapMessageKey() {
		if k <= code && k > res {
			res = k
		}
	}
	return res
}
