package domain

import (
	"fmt"
	"time"

	apperrors "messhall/internal/errors"
)

// StatusChange is the sparse set of order fields a status update may touch.
// A nil field means "leave unchanged"; ReadyTime and PickedUpTime carry the
// timestamp to set.
type StatusChange struct {
	ReadyTime    *time.Time
	PickedUpTime *time.Time
	Canceled     *bool
	Favorite     *bool
	Comments     *string
	ToGo         *bool
}

// lifecycle reports whether the change touches fulfillment state, as opposed
// to the orthogonal favorite/comments attributes.
func (c StatusChange) lifecycle() bool {
	return c.ReadyTime != nil || c.PickedUpTime != nil || c.Canceled != nil || c.ToGo != nil
}

// ValidateStatusChange enforces the order lifecycle:
//
//	Created -> ReadyForPickup -> PickedUp
//	Created | ReadyForPickup -> Canceled
//
// PickedUp and Canceled are terminal; once there, only favorite and comments
// may still change. Marking picked-up requires the order to already be ready,
// or to be made ready in the same change set.
func ValidateStatusChange(order *Order, change StatusChange) error {
	status := order.Status()

	if status.Terminal() && change.lifecycle() {
		return apperrors.NewConflictError(
			fmt.Sprintf("order %d is already %s", order.ID, status))
	}

	if change.PickedUpTime != nil && order.ReadyForPickup == nil && change.ReadyTime == nil {
		return apperrors.NewConflictError(
			fmt.Sprintf("order %d cannot be picked up before it is ready", order.ID))
	}

	if change.Canceled != nil && *change.Canceled && change.PickedUpTime != nil {
		return apperrors.NewConflictError(
			fmt.Sprintf("order %d cannot be canceled and picked up at once", order.ID))
	}

	return nil
}
