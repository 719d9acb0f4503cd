package quickfind

import (
	accountRepo "quickfind/database/repository/account"
	bookingRepo "quickfind/database/repository/booking"
	providerRepo "quickfind/database/repository/provider"
	"quickfind/services/channel"
)

// DefaultQuickFindService is the production implementation of Service.
type DefaultQuickFindService struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	AccountRepo  accountRepo.AccountRepository
	Bus          channel.Bus
	Dispatcher   SolicitationDispatcher
}
