package apperr

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeInternal        Code = "INTERNAL"
)

// Conflict reasons let clients tell precondition failures apart.
const (
	ReasonUsernameTaken   = "username_taken"
	ReasonAlreadyFriends  = "already_friends"
	ReasonRequestPending  = "request_pending"
	ReasonNotAFriend      = "not_a_friend"
	ReasonMatchInProgress = "match_in_progress"
	ReasonStaleInvitation = "stale_invitation"
	ReasonMatchOver       = "match_over"
	ReasonNotYourTurn     = "not_your_turn"
	ReasonCellOccupied    = "cell_occupied"
	ReasonStaleMatch      = "stale_match"
	ReasonChatClosed      = "chat_closed"
)
