package notification

import (
	"context"
	"fmt"
)

// Templated notifications for the common scenarios. Message wording is part
// of the product surface; deep links point into the dashboard SPA.

func (s *Service) BookingConfirmed(ctx context.Context, userID, className, sessionDate, sessionTime string) {
	msg := fmt.Sprintf("Your booking for %s on %s at %s has been confirmed! Don't be late.", className, sessionDate, sessionTime)
	s.Notify(ctx, userID, msg, "/member/dashboard/bookings")
}

func (s *Service) BookingCancelled(ctx context.Context, userID, className, sessionDate string) {
	msg := fmt.Sprintf("Your booking for %s on %s has been cancelled. Sorry dude!", className, sessionDate)
	s.Notify(ctx, userID, msg, "/member/dashboard/bookings")
}

func (s *Service) OrderPlaced(ctx context.Context, userID, orderID string, totalCents int64) {
	msg := fmt.Sprintf("Your order #%s has been placed successfully! Total: $%.2f", orderID, float64(totalCents)/100)
	s.Notify(ctx, userID, msg, "")
}

func (s *Service) NewBooking(ctx context.Context, trainerID, memberName, className, sessionDate string) {
	msg := fmt.Sprintf("%s has booked your %s session on %s.", memberName, className, sessionDate)
	s.Notify(ctx, trainerID, msg, "/trainer/dashboard/my-classes")
}

func (s *Service) BookingCancelledByMember(ctx context.Context, trainerID, className, sessionDate string) {
	msg := fmt.Sprintf("A member has cancelled their booking for your %s session on %s.", className, sessionDate)
	s.Notify(ctx, trainerID, msg, "/trainer/dashboard/my-classes")
}

func (s *Service) SessionCancelledByTrainer(ctx context.Context, userID, className, sessionDate string) {
	msg := fmt.Sprintf("The %s session scheduled for %s has been cancelled by the trainer. Let me find you another one.", className, sessionDate)
	s.Notify(ctx, userID, msg, "/member/dashboard/classes")
}
