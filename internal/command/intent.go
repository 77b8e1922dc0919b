package command

import "line-task-tracker/internal/model"

// Kind names the intent a message was classified as.
type Kind string

const (
	KindRegister     Kind = "REGISTER"
	KindAssign       Kind = "ASSIGN"
	KindReassign     Kind = "REASSIGN"
	KindSetDeadline  Kind = "SET_DEADLINE"
	KindEditDetail   Kind = "EDIT_DETAIL"
	KindAddNote      Kind = "ADD_NOTE"
	KindSetStatus    Kind = "SET_STATUS"
	KindRemind       Kind = "REMIND"
	KindConfirmDraft Kind = "CONFIRM_DRAFT"
	KindCancelDraft  Kind = "CANCEL_DRAFT"
	KindPageNext     Kind = "PAGE_NEXT"
	KindPagePrev     Kind = "PAGE_PREV"
	KindHelp         Kind = "HELP"
	KindAssignHelp   Kind = "ASSIGN_HELP"
	KindListPending  Kind = "LIST_PENDING"
	KindListAssigned Kind = "LIST_ASSIGNED"
	KindListToday    Kind = "LIST_TODAY"
	KindListUsers    Kind = "LIST_USERS"
	KindListRange    Kind = "LIST_RANGE"
	KindUnrecognized Kind = "UNRECOGNIZED"
)

// Intent is the structured result of classifying one message.
type Intent interface {
	Kind() Kind
}

// Register asks to create the sender's user record.
type Register struct {
	Username string
	RealName string
	Role     string // as typed, may be empty
}

// Assign proposes a new task for someone else.
type Assign struct {
	AssigneeRef    string
	Detail         string
	DeadlinePhrase string
	// Deadline is DeadlinePhrase in stored form, or the phrase unchanged when
	// it could not be resolved.
	Deadline string
	Note     string
	// Loose is true when the free-text form produced the intent.
	Loose bool
}

type Reassign struct {
	TaskID      string
	AssigneeRef string
}

type SetDeadline struct {
	TaskID         string
	DeadlinePhrase string
	Deadline       string
}

type EditDetail struct {
	TaskID string
	Detail string
}

type AddNote struct {
	TaskID string
	Note   string
}

type SetStatus struct {
	TaskID string
	Status model.Status
}

type Remind struct {
	TaskID string
}

// ConfirmDraft and CancelDraft carry the draft id when the user typed one.
type ConfirmDraft struct {
	DraftID string
}

type CancelDraft struct {
	DraftID string
}

type PageNext struct{}
type PagePrev struct{}

type Help struct{}
type AssignHelp struct{}
type ListPending struct{}
type ListAssigned struct{}
type ListToday struct{}
type ListUsers struct{}

// ListRange lists the sender's tasks between two DD/MM/YYYY dates.
type ListRange struct {
	From string
	To   string
}

// Unrecognized is returned for text outside the grammar.
type Unrecognized struct {
	Text string
}

func (Register) Kind() Kind     { return KindRegister }
func (Assign) Kind() Kind       { return KindAssign }
func (Reassign) Kind() Kind     { return KindReassign }
func (SetDeadline) Kind() Kind  { return KindSetDeadline }
func (EditDetail) Kind() Kind   { return KindEditDetail }
func (AddNote) Kind() Kind      { return KindAddNote }
func (SetStatus) Kind() Kind    { return KindSetStatus }
func (Remind) Kind() Kind       { return KindRemind }
func (ConfirmDraft) Kind() Kind { return KindConfirmDraft }
func (CancelDraft) Kind() Kind  { return KindCancelDraft }
func (PageNext) Kind() Kind     { return KindPageNext }
func (PagePrev) Kind() Kind     { return KindPagePrev }
func (Help) Kind() Kind         { return KindHelp }
func (AssignHelp) Kind() Kind   { return KindAssignHelp }
func (ListPending) Kind() Kind  { return KindListPending }
func (ListAssigned) Kind() Kind { return KindListAssigned }
func (ListToday) Kind() Kind    { return KindListToday }
func (ListUsers) Kind() Kind    { return KindListUsers }
func (ListRange) Kind() Kind    { return KindListRange }
func (Unrecognized) Kind() Kind { return KindUnrecognized }
