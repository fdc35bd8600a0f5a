package main

import "fmt"

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdFind
	CmdNote
	CmdMark
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	case '/':
		return CmdFind
	case '#':
		return CmdNote
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "[JUMP]"
	case CmdFind:
		return "[FIND]"
	case CmdNote:
		return "[NOTE]"
	case CmdMark:
		return "[MARK]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "segment #: "
	case CmdFind:
		return "segment id: "
	case CmdNote:
		return "note: "
	case CmdMark:
		return "mark: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdMark:
		return "r/g/a: mark   c: clear   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return ": jump   / find id   # note   m mark   z zoom"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ci.cmd)
	prompt := m.commandPrompt(m.ci.cmd)
	return badge + " " + prompt + m.ci.buf
}

func (m *model) commandRightContext() string {
	return fmt.Sprintf("%d/%d",
		m.data.current+1,
		len(m.data.segments),
	)
}
