package ui

const (
	infoCycles  = 3
	errorCycles = 5
)

// outcome is the result of a session operation as shown to the user.
type outcome struct {
	ok  bool
	msg string
}

func succeed(msg string) outcome { return outcome{ok: true, msg: msg} }
func fail(msg string) outcome    { return outcome{msg: msg} }
func silent() outcome            { return outcome{ok: true} }

// status is the transient message line. It disappears after a fixed number
// of loop cycles.
type status struct {
	text   string
	isErr  bool
	cycles int
}

func (s *status) show(o outcome) {
	if o.msg == "" {
		return
	}
	s.text = o.msg
	s.isErr = !o.ok
	s.cycles = infoCycles
	if s.isErr {
		s.cycles = errorCycles
	}
}

// tick counts down one cycle and clears the message when it runs out.
func (s *status) tick() {
	if s.cycles == 0 {
		return
	}
	s.cycles--
	if s.cycles == 0 {
		s.text = ""
		s.isErr = false
	}
}

func (s status) visible() bool { return s.text != "" }
