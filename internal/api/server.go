package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/farmstead/farmstead-api/docs"
	v1 "github.com/farmstead/farmstead-api/internal/api/handler/v1"
	"github.com/farmstead/farmstead-api/internal/api/middleware"
	"github.com/farmstead/farmstead-api/internal/config"
	"github.com/farmstead/farmstead-api/internal/repository"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
	"github.com/farmstead/farmstead-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	livestockHandler := s.initLivestockHandler(db)
	cropHandler := s.initCropHandler(db)
	equipmentHandler := s.initEquipmentHandler(db)
	workerHandler := s.initWorkerHandler(db)
	taskHandler := s.initTaskHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	s.MountHandlers(livestockHandler, cropHandler, equipmentHandler, workerHandler, taskHandler, dashboardHandler)

	return s
}

func (s *Server) initLivestockHandler(db *gorm.DB) *v1.LivestockHandler {
	livestockDAO := dao.NewLivestockDAO(db)
	repo := repository.NewLivestockRepository(livestockDAO)
	svc := service.NewLivestockService(repo)
	handler := v1.NewLivestockHandler(svc)

	return handler
}

func (s *Server) initCropHandler(db *gorm.DB) *v1.CropHandler {
	cropDAO := dao.NewCropDAO(db)
	repo := repository.NewCropRepository(cropDAO)
	svc := service.NewCropService(repo)
	handler := v1.NewCropHandler(svc)

	return handler
}

func (s *Server) initEquipmentHandler(db *gorm.DB) *v1.EquipmentHandler {
	equipmentDAO := dao.NewEquipmentDAO(db)
	repo := repository.NewEquipmentRepository(equipmentDAO)
	svc := service.NewEquipmentService(repo)
	handler := v1.NewEquipmentHandler(svc)

	return handler
}

func (s *Server) initWorkerHandler(db *gorm.DB) *v1.WorkerHandler {
	workerDAO := dao.NewWorkerDAO(db)
	repo := repository.NewWorkerRepository(workerDAO)
	svc := service.NewWorkerService(repo)
	handler := v1.NewWorkerHandler(svc)

	return handler
}

func (s *Server) initTaskHandler(db *gorm.DB) *v1.TaskHandler {
	taskDAO := dao.NewTaskDAO(db)
	repo := repository.NewTaskRepository(taskDAO)
	svc := service.NewTaskService(repo)
	handler := v1.NewTaskHandler(svc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	livestockRepo := repository.NewLivestockRepository(dao.NewLivestockDAO(db))
	cropRepo := repository.NewCropRepository(dao.NewCropDAO(db))
	equipmentRepo := repository.NewEquipmentRepository(dao.NewEquipmentDAO(db))
	workerRepo := repository.NewWorkerRepository(dao.NewWorkerDAO(db))
	svc := service.NewDashboardService(livestockRepo, cropRepo, equipmentRepo, workerRepo)
	handler := v1.NewDashboardHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	livestockHandler *v1.LivestockHandler,
	cropHandler *v1.CropHandler,
	equipmentHandler *v1.EquipmentHandler,
	workerHandler *v1.WorkerHandler,
	taskHandler *v1.TaskHandler,
	dashboardHandler *v1.DashboardHandler,
) {
	const basePath = "/api/v1"

	livestock := s.Router.Group(basePath)
	{
		livestock.GET("/livestock-types", livestockHandler.HandleGetLivestock)
		livestock.POST("/livestock-types", livestockHandler.HandleUpsertType)
		livestock.PUT("/livestock-types/:name", livestockHandler.HandleUpdateTypeCosts)
		livestock.DELETE("/livestock-types/:name", livestockHandler.HandleDeleteType)
		livestock.POST("/livestock-types/:name/costs", livestockHandler.HandleAddCost)
		livestock.DELETE("/livestock-types/:name/costs", livestockHandler.HandleResetCost)
		livestock.POST("/livestock-types/:name/sales", livestockHandler.HandleSell)
		livestock.POST("/livestock-types/:name/losses", livestockHandler.HandleRecordLoss)
		livestock.DELETE("/livestock-sales", livestockHandler.HandleResetAllSales)
		livestock.GET("/animals", livestockHandler.HandleGetAnimals)
		livestock.POST("/animals", livestockHandler.HandleRegisterAnimal)
		livestock.PUT("/animals/:animalID", livestockHandler.HandleUpdateAnimal)
		livestock.DELETE("/animals/:animalID", livestockHandler.HandleDeleteAnimal)
	}

	crops := s.Router.Group(basePath)
	{
		crops.GET("/crops", cropHandler.HandleGetCrops)
		crops.POST("/crops", cropHandler.HandleCreateCrop)
		crops.PUT("/crops/:cropID", cropHandler.HandleUpdateCrop)
		crops.DELETE("/crops/:cropID", cropHandler.HandleDeleteCrop)
		crops.POST("/crops/:cropID/costs", cropHandler.HandleAddCost)
		crops.POST("/crops/:cropID/sales", cropHandler.HandleSell)
		crops.DELETE("/crop-sales", cropHandler.HandleResetAllSales)
	}

	equipments := s.Router.Group(basePath)
	{
		equipments.GET("/equipments", equipmentHandler.HandleGetEquipments)
		equipments.POST("/equipments", equipmentHandler.HandleCreateEquipment)
		equipments.POST("/equipments/:equipmentID/rentals", equipmentHandler.HandleAddRentalCost)
		equipments.POST("/equipments/:equipmentID/maintenance", equipmentHandler.HandleAddMaintenanceCost)
		equipments.DELETE("/equipments/:equipmentID", equipmentHandler.HandleDeleteEquipment)
	}

	workers := s.Router.Group(basePath)
	{
		workers.GET("/workers", workerHandler.HandleGetWorkers)
		workers.POST("/workers", workerHandler.HandleCreateWorker)
		workers.PUT("/workers/:workerID", workerHandler.HandleUpdateWorker)
		workers.GET("/salary-payments", workerHandler.HandleGetPayments)
		workers.POST("/salary-payments", workerHandler.HandleRecordPayment)
		workers.GET("/roles", workerHandler.HandleGetRoles)
		workers.POST("/roles", workerHandler.HandleCreateRole)
		workers.GET("/responsibility-areas", workerHandler.HandleGetAreas)
		workers.POST("/responsibility-areas", workerHandler.HandleCreateArea)
	}

	tasks := s.Router.Group(basePath)
	{
		tasks.GET("/tasks", taskHandler.HandleGetTasks)
		tasks.POST("/tasks", taskHandler.HandleCreateTask)
		tasks.GET("/tasks/calendar", taskHandler.HandleGetCalendar)
		tasks.PUT("/tasks/:taskID", taskHandler.HandleUpdateTask)
		tasks.DELETE("/tasks/:taskID", taskHandler.HandleDeleteTask)
	}

	s.Router.GET(basePath+"/dashboard", dashboardHandler.HandleGetDashboard)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Farmstead API"
	docs.SwaggerInfo.Description = "Farm management and record-keeping API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
