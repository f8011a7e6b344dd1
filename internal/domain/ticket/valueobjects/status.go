package valueobjects

// Status is the ticket lifecycle state. The machine is open -> closed;
// no reopen transition exists.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) String() string {
	return string(s)
}
