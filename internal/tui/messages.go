package tui

import (
	"github.com/DanOgh07/quantumin-solver/internal/solver"
	"github.com/DanOgh07/quantumin-solver/internal/tutor"
)

type sessionReadyMsg struct {
	session *tutor.Session
	err     error
}

type solveResultMsg struct {
	seq int
	sol *solver.Solution
	err error
}

type tutorReplyMsg struct {
	seq  int
	text string
	err  error
}
