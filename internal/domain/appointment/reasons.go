package appointment

import "github.com/BruksfildServices01/barber-chain/internal/httperr"

// ===============================
// Review Rejection Reasons
// ===============================

type RejectionReason string

const (
	ReasonScheduleConflict      RejectionReason = "schedule_conflict"
	ReasonStaffUnavailable      RejectionReason = "staff_unavailable"
	ReasonIncompleteInformation RejectionReason = "incomplete_information"
	ReasonMaintenance           RejectionReason = "maintenance"
	ReasonOther                 RejectionReason = "other"
)

var rejectionReasons = map[RejectionReason]bool{
	ReasonScheduleConflict:      true,
	ReasonStaffUnavailable:      true,
	ReasonIncompleteInformation: true,
	ReasonMaintenance:           true,
	ReasonOther:                 true,
}

func ValidRejectionReason(r RejectionReason) error {
	if !rejectionReasons[r] {
		return httperr.ErrBusiness(httperr.CodeInvalidRejectionReason)
	}
	return nil
}
