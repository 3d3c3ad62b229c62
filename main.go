package main

import (
	"os"

	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/controllers"
	"github.com/AdityaTidake/MedPlus/routes"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
}

func main() {
	// Perform application initialization
	Init()
	controllers.Setup(configuration.DB)
	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	configuration.Log.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		configuration.Log.WithError(err).Fatal("server exited")
	}
}
