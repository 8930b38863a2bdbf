package main

import (
	"github.com/sirupsen/logrus"

	"quick_heal/config"
	"quick_heal/database"
	"quick_heal/database/dbHelper"
	"quick_heal/database/handler"
	"quick_heal/mailer"
	"quick_heal/server"
	"quick_heal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Panicf("Failed to load config with error: %+v", err)
	}

	db, err := database.ConnectAndMigrate(cfg.Database)
	if err != nil {
		logrus.Panicf("Failed to initialize and migrate database with error: %+v", err)
	}
	defer database.CloseDb(db)
	logrus.Info("migration successful!!")

	smtpMailer := mailer.New(mailer.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		AdminEmail: cfg.AdminEmail,
	})

	products := dbHelper.NewProductStore(db)
	addressService := service.NewAddressService(dbHelper.NewAddressStore(db))
	cartService := service.NewCartService(dbHelper.NewCartStore(db), products)
	orderService := service.NewOrderService(
		dbHelper.NewOrderStore(db),
		cartService,
		addressService,
		products,
		smtpMailer,
		cfg.DeliveryFee,
	)

	appointmentService := service.NewAppointmentService(smtpMailer)

	h := handler.New(products, addressService, cartService, orderService, appointmentService)
	srv := server.SetupRoutes(h, []byte(cfg.JWTSecret))

	logrus.Infof("Server starting at %s", cfg.ServerPort)
	if err := srv.Run(cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to run server with error %+v", err)
	}
}
