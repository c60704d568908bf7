package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/kassem10h/Gym-Poject/internal/app/api/server"
	"github.com/kassem10h/Gym-Poject/internal/app/service/account"
	"github.com/kassem10h/Gym-Poject/internal/app/service/booking"
	"github.com/kassem10h/Gym-Poject/internal/app/service/cart"
	"github.com/kassem10h/Gym-Poject/internal/app/service/checkout"
	"github.com/kassem10h/Gym-Poject/internal/app/service/membership"
	"github.com/kassem10h/Gym-Poject/internal/app/service/notification"
	"github.com/kassem10h/Gym-Poject/internal/app/service/payment"
	"github.com/kassem10h/Gym-Poject/internal/app/service/schedule"
	"github.com/kassem10h/Gym-Poject/internal/app/service/shop"
	"github.com/kassem10h/Gym-Poject/internal/platform/db"
	"github.com/kassem10h/Gym-Poject/pkg/config"
	"github.com/kassem10h/Gym-Poject/pkg/logger"
	"github.com/kassem10h/Gym-Poject/pkg/metrics"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	metrics.Module,
	server.Module,
	account.Module,
	schedule.Module,
	shop.Module,
	cart.Module,
	payment.Module,
	checkout.Module,
	booking.Module,
	membership.Module,
	notification.Module,
)
