package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Status
		action  Action
		to      Status
		wantErr string
	}{
		{StatusDraft, ActionSaveDraft, StatusDraft, ""},
		{StatusDraft, ActionSubmit, StatusSubmitted, ""},
		{StatusMissingInfo, ActionRespondMI, StatusSubmitted, ""},
		{StatusUnderReview, ActionWithdraw, StatusWithdrawn, ""},
		{StatusSubmitted, ActionRequestMI, StatusMissingInfo, ""},
		{StatusUnderReview, ActionApprove, StatusApproved, ""},
		{StatusSubmitted, ActionReject, StatusRejected, ""},
		{StatusSubmitted, ActionAssign, StatusUnderReview, ""},
		{StatusUnderReview, ActionAssign, StatusUnderReview, ""},
		{StatusApproved, ActionQueuePayment, StatusPendingPayment, ""},
		{StatusPendingPayment, ActionConfirmPayment, StatusPaid, ""},

		{StatusSubmitted, ActionSaveDraft, StatusSubmitted, "Can only edit draft applications"},
		{StatusSubmitted, ActionSubmit, StatusSubmitted, "Can only submit draft applications"},
		{StatusApproved, ActionWithdraw, StatusApproved, "Cannot withdraw application in current status"},
		{StatusMissingInfo, ActionApprove, StatusMissingInfo, "Can only approve submitted/under review applications"},
		{StatusPaid, ActionConfirmPayment, StatusPaid, "Only applications pending payment can be marked paid"},
		{StatusDraft, Action("teleport"), StatusDraft, `unknown action "teleport"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			to, err := Transition(tt.from, tt.action)
			assert.Equal(t, tt.to, to)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, StatusOf(err))
		})
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range AllStatuses {
		if s.Terminal() {
			assert.Empty(t, Allowed(s), s)
		}
	}
}

func TestAllowed(t *testing.T) {
	assert.ElementsMatch(t, []Action{ActionSaveDraft, ActionSubmit, ActionWithdraw}, Allowed(StatusDraft))
	assert.ElementsMatch(t, []Action{ActionRespondMI, ActionWithdraw}, Allowed(StatusMissingInfo))
	assert.Equal(t, []Action{ActionQueuePayment}, Allowed(StatusApproved))
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusUnderReview.Valid())
	assert.False(t, Status("Lost").Valid())
	assert.True(t, StatusDraft.DocumentsEditable())
	assert.True(t, StatusMissingInfo.DocumentsEditable())
	assert.False(t, StatusSubmitted.DocumentsEditable())
}
