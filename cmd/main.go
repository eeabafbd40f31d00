package main

import (
	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/routes"
	"github.com/MichelaFaella/EcoGrow-BackEnd/services"
)

func main() {
	config.InitDB()

	rt := services.NewRealtimeHub()
	services.InitReminderEvents(rt)

	r := routes.SetupRouter(rt)
	r.Run(":8080")
}
