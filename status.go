package main

// OpStatus is the result of a whole run and becomes the process exit code.
type OpStatus int

const (
	OpErrNone OpStatus = iota
	OpErrInit
	OpErrRetrieve
	OpErrIndex
	OpErrJSON
	OpErrUnknown OpStatus = 255
)

func (s OpStatus) String() string {
	switch s {
	case OpErrNone:
		return "ok"
	case OpErrInit:
		return "initialization failed"
	case OpErrRetrieve:
		return "message retrieval failed"
	case OpErrIndex:
		return "invalid message index"
	case OpErrJSON:
		return "json encoding failed"
	default:
		return "unknown error"
	}
}

// worse returns whichever status should win when a run hits both.
func worse(a, b OpStatus) OpStatus {
	if a == OpErrNone {
		return b
	}
	return a
}
