package routes

import (
	"github.com/MichelaFaella/EcoGrow-BackEnd/controllers"
	"github.com/MichelaFaella/EcoGrow-BackEnd/middlewares"
	"github.com/MichelaFaella/EcoGrow-BackEnd/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/check-auth", controllers.CheckAuth)

		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.DELETE("/user", controllers.DeleteAccount)

		api.GET("/plants", controllers.ListPlants)
		api.GET("/plant/:plant_id", controllers.GetPlant)

		api.GET("/user_plant/all", controllers.ListUserPlants)
		api.POST("/user_plant/add", controllers.AddUserPlant)
		api.DELETE("/user_plant/delete", controllers.DeleteUserPlant)

		api.GET("/question/all", controllers.ListQuestions)
		api.POST("/question/answers", controllers.SaveQuestionAnswers)

		api.POST("/plant/:plant_id/watering/do", controllers.WaterPlant)
		api.POST("/plant/:plant_id/watering/undo", controllers.UndoWatering)
		api.GET("/watering/overview", controllers.WeeklyOverview)
		api.GET("/watering_plan/all", controllers.ListWateringPlans)
		api.GET("/watering_plan/calendar-export", controllers.CalendarExport)
		api.GET("/watering_log/all", controllers.ListWateringLogs)

		api.GET("/reminder/all", controllers.ListReminders)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws/reminders", rc.RemindersWS)
	}

	return r
}
