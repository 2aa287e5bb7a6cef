package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/handler/http/middleware"
	"github.com/mihretabn/taskhub/internal/usecase"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler   *UserHandler
	vendorHandler *VendorHandler
	adminHandler  *AdminHandler
	tokenService  usecase.TokenService
	uploadDir     string
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, vendorUsecase usecasecontract.IVendorUseCase, adminUsecase usecasecontract.IAdminUseCase, categoryUsecase usecasecontract.ICategoryUseCase, contentUsecase usecasecontract.IContentUseCase, tokenService usecase.TokenService, files contract.IFileStore, uploadDir string) *Router {
	return &Router{
		userHandler:   NewUserHandler(userUsecase, files),
		vendorHandler: NewVendorHandler(vendorUsecase, categoryUsecase, files),
		adminHandler:  NewAdminHandler(adminUsecase, categoryUsecase, contentUsecase, files),
		tokenService:  tokenService,
		uploadDir:     uploadDir,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/uploads", r.uploadDir)

	authRequired := middleware.AuthMiddleWare(r.tokenService)

	// API v1 routes
	v1 := router.Group("/api/v1")

	user := v1.Group("/user")
	{
		user.POST("/registerUser", r.userHandler.RegisterUser)
		user.POST("/verifyOtp", r.userHandler.VerifyOtp)
		user.POST("/loginUser", r.userHandler.LoginUser)
		user.GET("/getUserById", authRequired, r.userHandler.GetUserById)
	}

	vendor := v1.Group("/vendor")
	{
		vendor.POST("/registerVendor", r.vendorHandler.RegisterVendor)
		vendor.POST("/vendorVerifyOtp", r.vendorHandler.VendorVerifyOtp)
		vendor.POST("/loginVendor", r.vendorHandler.LoginVendor)
		vendor.GET("/getVendorById", authRequired, r.vendorHandler.GetVendorById)
		vendor.GET("/getAllCategories", r.vendorHandler.GetAllCategories)
		vendor.POST("/addVendorReview", authRequired, r.vendorHandler.AddVendorReview)
	}

	admin := v1.Group("/admin")
	{
		admin.POST("/adminSignup", r.adminHandler.AdminSignup)
		admin.POST("/loginAdmin", r.adminHandler.LoginAdmin)
		admin.GET("/getAdminDetail", authRequired, r.adminHandler.GetAdminDetail)
		admin.POST("/updateAdminDetail", authRequired, r.adminHandler.UpdateAdminDetail)
		admin.POST("/resetAdminPassword", authRequired, r.adminHandler.ResetAdminPassword)
		admin.GET("/getAllUsers", authRequired, r.adminHandler.GetAllUsers)

		admin.POST("/policyUpdate", authRequired, r.adminHandler.PolicyUpdate)
		admin.GET("/getPolicy", r.adminHandler.GetPolicy)

		admin.POST("/addFAQ", authRequired, r.adminHandler.AddFAQ)
		admin.POST("/updateFAQ", authRequired, r.adminHandler.UpdateFAQ)
		admin.GET("/getAllFAQs", r.adminHandler.GetAllFAQs)
		admin.GET("/getFAQById", r.adminHandler.GetFAQById)

		admin.POST("/addOrUpdateContactUs", authRequired, r.adminHandler.AddOrUpdateContactUs)
		admin.GET("/getContactUs", r.adminHandler.GetContactUs)

		admin.POST("/addCategory", authRequired, r.adminHandler.AddCategory)
		admin.GET("/getCategories", r.adminHandler.GetCategories)
		admin.GET("/getCategoryById", r.adminHandler.GetCategoryById)
		admin.POST("/updateCategory", authRequired, r.adminHandler.UpdateCategory)
		admin.DELETE("/deleteCategory", authRequired, r.adminHandler.DeleteCategory)
	}
}
