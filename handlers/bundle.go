package handlers

import (
	"github.com/gin-gonic/gin"

	userRepoPkg "mountaincottage/database/repository/user"
	"mountaincottage/services/admin"
	"mountaincottage/services/auth"
	"mountaincottage/services/booking"
	"mountaincottage/services/cottage"
	"mountaincottage/services/stats"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// collaborators the route middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	Sessions auth.SessionStore

	// Auth endpoints
	LoginHandler          gin.HandlerFunc
	AdminLoginHandler     gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	RegisterHandler       gin.HandlerFunc
	ProfileHandler        gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ChangePasswordHandler gin.HandlerFunc

	// Public endpoints
	PublicStatisticsHandler gin.HandlerFunc
	ListCottagesHandler     gin.HandlerFunc
	CottageDetailHandler    gin.HandlerFunc

	// Tourist booking endpoints
	CheckAvailabilityHandler   gin.HandlerFunc
	ReserveHandler             gin.HandlerFunc
	RateCottageHandler         gin.HandlerFunc
	TouristReservationsHandler gin.HandlerFunc
	CancelReservationHandler   gin.HandlerFunc

	// Owner endpoints
	OwnerReservationsHandler  gin.HandlerFunc
	ConfirmReservationHandler gin.HandlerFunc
	RejectReservationHandler  gin.HandlerFunc
	OwnerCottagesHandler      gin.HandlerFunc
	CreateCottageHandler      gin.HandlerFunc
	ImportCottageHandler      gin.HandlerFunc
	UpdateCottageHandler      gin.HandlerFunc
	DeleteCottageHandler      gin.HandlerFunc
	OwnerStatisticsHandler    gin.HandlerFunc

	// Admin endpoints
	AdminListUsersHandler         gin.HandlerFunc
	AdminGetUserHandler           gin.HandlerFunc
	AdminUpdateUserHandler        gin.HandlerFunc
	AdminActivateUserHandler      gin.HandlerFunc
	AdminDeactivateUserHandler    gin.HandlerFunc
	AdminDeleteUserHandler        gin.HandlerFunc
	AdminListCottagesHandler      gin.HandlerFunc
	AdminBlockCottageHandler      gin.HandlerFunc
	AdminUnblockCottageHandler    gin.HandlerFunc
	AdminListRegistrationsHandler gin.HandlerFunc
	AdminApproveHandler           gin.HandlerFunc
	AdminRejectHandler            gin.HandlerFunc
}

// NewHandlerBundle builds every handler from the service layer.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	sessions auth.SessionStore,
	authSvc auth.AuthService,
	bookingSvc booking.BookingService,
	cottageSvc cottage.CottageService,
	adminSvc admin.AdminService,
	statsSvc stats.StatsService,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,
		Sessions: sessions,

		LoginHandler:          Login(authSvc),
		AdminLoginHandler:     AdminLogin(authSvc),
		LogoutHandler:         Logout(authSvc),
		RegisterHandler:       Register(authSvc),
		ProfileHandler:        Profile(authSvc),
		UpdateProfileHandler:  UpdateProfile(authSvc),
		ChangePasswordHandler: ChangePassword(authSvc),

		PublicStatisticsHandler: PublicStatistics(statsSvc),
		ListCottagesHandler:     ListCottages(cottageSvc),
		CottageDetailHandler:    CottageDetail(cottageSvc),

		CheckAvailabilityHandler:   CheckAvailability(bookingSvc),
		ReserveHandler:             Reserve(bookingSvc),
		RateCottageHandler:         RateCottage(cottageSvc),
		TouristReservationsHandler: TouristReservations(bookingSvc),
		CancelReservationHandler:   CancelReservation(bookingSvc),

		OwnerReservationsHandler:  OwnerReservations(bookingSvc),
		ConfirmReservationHandler: ConfirmReservation(bookingSvc),
		RejectReservationHandler:  RejectReservation(bookingSvc),
		OwnerCottagesHandler:      OwnerCottages(cottageSvc),
		CreateCottageHandler:      CreateCottage(cottageSvc),
		ImportCottageHandler:      ImportCottage(cottageSvc),
		UpdateCottageHandler:      UpdateCottage(cottageSvc),
		DeleteCottageHandler:      DeleteCottage(cottageSvc),
		OwnerStatisticsHandler:    OwnerStatistics(cottageSvc),

		AdminListUsersHandler:         AdminListUsers(adminSvc),
		AdminGetUserHandler:           AdminGetUser(adminSvc),
		AdminUpdateUserHandler:        AdminUpdateUser(adminSvc),
		AdminActivateUserHandler:      AdminActivateUser(adminSvc),
		AdminDeactivateUserHandler:    AdminDeactivateUser(adminSvc),
		AdminDeleteUserHandler:        AdminDeleteUser(adminSvc),
		AdminListCottagesHandler:      AdminListCottages(adminSvc),
		AdminBlockCottageHandler:      AdminBlockCottage(adminSvc),
		AdminUnblockCottageHandler:    AdminUnblockCottage(adminSvc),
		AdminListRegistrationsHandler: AdminListRegistrations(adminSvc),
		AdminApproveHandler:           AdminApproveRegistration(adminSvc),
		AdminRejectHandler:            AdminRejectRegistration(adminSvc),
	}
}
