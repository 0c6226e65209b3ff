package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller"
	middlewares "github.com/minaamulhaq/updatedPortfolowithbackend/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	userRoutes := r.Group("/user")
	{
		userRoutes.POST("/login", ctrl.Login)
		userRoutes.POST("/logout", middles.AuthMiddleware, ctrl.Logout)
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.GET("/dashboard", middles.AuthMiddleware, ctrl.Dashboard)
	}

	cvRoutes := r.Group("/cv")
	{
		cvRoutes.POST("/upload", middles.AuthMiddleware, ctrl.UploadCV)
		cvRoutes.DELETE("/delete/:id", middles.AuthMiddleware, ctrl.DeleteCV)
		cvRoutes.GET("/download", ctrl.GetCV)
		cvRoutes.GET("/all", ctrl.GetAllCVs)
		cvRoutes.GET("/download/:id", ctrl.DownloadCV)
	}

	projectRoutes := r.Group("/project")
	{
		projectRoutes.POST("/add", middles.AuthMiddleware, ctrl.CreateProject)
		projectRoutes.GET("/all", ctrl.GetProjects)
		projectRoutes.GET("/:id", ctrl.GetProjectByID)
		projectRoutes.DELETE("/delete/:id", middles.AuthMiddleware, ctrl.DeleteProject)
		projectRoutes.PUT("/update/:id", middles.AuthMiddleware, ctrl.UpdateProject)
	}

	skillRoutes := r.Group("/skill")
	{
		skillRoutes.POST("/add", middles.AuthMiddleware, ctrl.CreateSkill)
		skillRoutes.GET("/all", ctrl.GetSkills)
		skillRoutes.PUT("/update/:id", middles.AuthMiddleware, ctrl.UpdateSkill)
	}

	contactRoutes := r.Group("/contact")
	{
		contactRoutes.POST("/create", ctrl.CreateContact)
		contactRoutes.GET("/all", middles.AuthMiddleware, ctrl.GetContacts)
	}

	return r
}
