package handlers

import (
	userRepo "smartpark/database/repository/user"
)

// HandlerBundle groups every handler the router needs, plus the user
// repository consumed by the auth middleware.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth          *AuthHandler
	Users         *UserHandler
	Lots          *LotHandler
	Reservations  *ReservationHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
}
