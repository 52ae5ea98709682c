package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// allowedOrigins mirrors the frontend deployments; credentials stay enabled
// for them.
var allowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://tour-service-web.web.app",
}

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/jwt", h.Token)

	auth := AuthJWT(h.JWTSecret)
	admin := h.RequireAdmin()

	// users
	r.GET("/users", auth, admin, h.ListUsers)
	r.GET("/users/admin/:email", auth, h.CheckAdmin)
	r.GET("/users/guid/:email", h.CheckGuide)
	r.GET("/findusers/:email", h.FindUser)
	r.POST("/users", h.SignUp)
	r.PATCH("/users/admin/:id", auth, admin, h.MakeAdmin)
	r.PATCH("/users/guide/:id", h.MakeGuide)
	r.PATCH("/users/profile/:email", h.UpdateProfile)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/findGuide", h.ListGuides)
	r.GET("/guidProfile/:id", h.GuideProfile)
	r.GET("/userCount", h.UserCount)

	// packages and tour types
	r.POST("/addpackage", h.AddPackage)
	r.GET("/packege", h.ListPackages)
	r.GET("/packageDetails/:id", h.PackageDetails)
	r.GET("/tourtype", h.ListTourTypes)
	r.GET("/tourCategory/:tourType", h.PackagesByType)

	// bookings
	r.POST("/booking", h.CreateBooking)
	r.GET("/getbooking", h.ListBookings)
	r.DELETE("/deletebooking/:id", h.DeleteBooking)
	r.GET("/myBooking", h.GuideBookings)
	r.PATCH("/acceptedbooking/status/:id", h.AcceptBooking)
	r.PATCH("/booking/status/:id", h.RejectBooking)
	r.GET("/myTotalBooking", h.BookingCount)

	// wishlist
	r.POST("/addwishlist", h.AddWishlist)
	r.GET("/wishlist", h.ListWishlist)
	r.DELETE("/deletewishlist/:id", h.DeleteWishlist)
	r.GET("/wishlistCount", h.WishlistCount)

	// stories
	r.POST("/addstory", h.AddStory)
	r.GET("/getStorys", h.ListStories)
	r.GET("/findStory/:id", h.FindStory)

	return r
}
