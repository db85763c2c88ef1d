package domain

import "fmt"

type Status string

const (
	StatusDraft          Status = "Draft"
	StatusSubmitted      Status = "Submitted"
	StatusUnderReview    Status = "Under Review"
	StatusMissingInfo    Status = "Missing Info"
	StatusApproved       Status = "Approved"
	StatusRejected       Status = "Rejected"
	StatusPendingPayment Status = "Pending Payment"
	StatusPaid           Status = "Paid"
	StatusWithdrawn      Status = "Withdrawn"
)

var AllStatuses = []Status{
	StatusDraft, StatusSubmitted, StatusUnderReview, StatusMissingInfo, StatusApproved,
	StatusRejected, StatusPendingPayment, StatusPaid, StatusWithdrawn,
}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusWithdrawn || s == StatusRejected || s == StatusPaid
}

// DocumentsEditable reports whether documents can be attached or removed.
func (s Status) DocumentsEditable() bool {
	return s == StatusDraft || s == StatusMissingInfo
}

type Action string

const (
	ActionSaveDraft      Action = "save_draft"
	ActionSubmit         Action = "submit"
	ActionRespondMI      Action = "respond_missing_info"
	ActionWithdraw       Action = "withdraw"
	ActionRequestMI      Action = "request_missing_info"
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionAssign         Action = "assign"
	ActionQueuePayment   Action = "queue_payment"
	ActionConfirmPayment Action = "confirm_payment"
)

type edge struct {
	from   Status
	action Action
}

var transitions = map[edge]Status{
	{StatusDraft, ActionSaveDraft}: StatusDraft,
	{StatusDraft, ActionSubmit}:    StatusSubmitted,

	{StatusMissingInfo, ActionRespondMI}: StatusSubmitted,

	{StatusDraft, ActionWithdraw}:       StatusWithdrawn,
	{StatusSubmitted, ActionWithdraw}:   StatusWithdrawn,
	{StatusUnderReview, ActionWithdraw}: StatusWithdrawn,
	{StatusMissingInfo, ActionWithdraw}: StatusWithdrawn,

	{StatusSubmitted, ActionRequestMI}:   StatusMissingInfo,
	{StatusUnderReview, ActionRequestMI}: StatusMissingInfo,
	{StatusSubmitted, ActionApprove}:     StatusApproved,
	{StatusUnderReview, ActionApprove}:   StatusApproved,
	{StatusSubmitted, ActionReject}:      StatusRejected,
	{StatusUnderReview, ActionReject}:    StatusRejected,
	{StatusSubmitted, ActionAssign}:      StatusUnderReview,
	{StatusUnderReview, ActionAssign}:    StatusUnderReview,

	{StatusApproved, ActionQueuePayment}:         StatusPendingPayment,
	{StatusPendingPayment, ActionConfirmPayment}: StatusPaid,
}

var rejections = map[Action]string{
	ActionSaveDraft:      "Can only edit draft applications",
	ActionSubmit:         "Can only submit draft applications",
	ActionRespondMI:      "Application is not in Missing Info status",
	ActionWithdraw:       "Cannot withdraw application in current status",
	ActionRequestMI:      "Can only request MI for submitted/under review applications",
	ActionApprove:        "Can only approve submitted/under review applications",
	ActionReject:         "Can only reject submitted/under review applications",
	ActionAssign:         "Can only assign submitted/under review applications",
	ActionQueuePayment:   "Only approved applications can be queued for payment",
	ActionConfirmPayment: "Only applications pending payment can be marked paid",
}

// Transition returns the status reached by applying action in state from,
// or a 400 error when the edge does not exist.
func Transition(from Status, action Action) (Status, error) {
	to, ok := transitions[edge{from, action}]
	if !ok {
		msg, known := rejections[action]
		if !known {
			msg = fmt.Sprintf("unknown action %q", action)
		}
		return from, BadRequest(msg)
	}
	return to, nil
}

// Allowed lists the actions available from s.
func Allowed(s Status) []Action {
	var actions []Action
	for _, a := range []Action{
		ActionSaveDraft, ActionSubmit, ActionRespondMI, ActionWithdraw, ActionRequestMI,
		ActionApprove, ActionReject, ActionAssign, ActionQueuePayment, ActionConfirmPayment,
	} {
		if _, ok := transitions[edge{s, a}]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}
