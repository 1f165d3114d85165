package tui

type state int

const (
	listState state = iota
	editState
	errorState
)
