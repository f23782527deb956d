package mockd

import (
	"github.com/gin-gonic/gin"
	"github.com/streetbites/streetbites/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Server is a self-contained fake of the ordering backend, used for local
// development and tests. It keeps its state in sqlite and answers the same
// REST surface the real backend does.
type Server struct {
	DB        *gorm.DB
	JWTSecret []byte
}

// NewServer opens the database, migrates, and seeds the menu. dbPath may be
// "file::memory:?cache=shared" for throwaway instances.
func NewServer(dbPath string, jwtSecret []byte) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&User{}, &Menu{}, &Order{}, &LineItem{}, &Branch{}, &Ingredient{}); err != nil {
		return nil, err
	}

	srv := &Server{DB: db, JWTSecret: jwtSecret}
	srv.seed()
	return srv, nil
}

// Router wires up the REST surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	orders := NewOrderController(s.DB)
	kitchen := NewKitchenController(s.DB)
	auth := NewAuthController(s.DB, s.JWTSecret)
	manage := NewManageController(s.DB)

	r.GET("/api/menu", s.getMenu)

	r.POST("/api/orders", orders.CreateOrder)
	r.POST("/api/orderv2", orders.CreateOrderV2)
	r.GET("/api/myorder", orders.MyOrders)
	r.GET("/api/orders/detail", orders.OrderDetail)
	r.PUT("/api/orders/:id", orders.ReplaceItems)
	r.DELETE("/api/orders/:id", orders.CancelOrder)

	r.GET("/api/kitchen/today", kitchen.Today)
	r.PATCH("/api/kitchen/status/:id", kitchen.UpdateStatus)

	r.POST("/api/login", auth.Login)
	r.POST("/api/register", auth.Register)

	// Management screens require a staff token, like the real backend.
	managed := r.Group("/api")
	managed.Use(s.authRequired())
	{
		managed.GET("/branch", manage.ListBranches)
		managed.POST("/branch", manage.CreateBranch)
		managed.GET("/ingredients", manage.ListIngredients)
		managed.POST("/ingredients", manage.CreateIngredient)
		managed.GET("/profiles", manage.ListStaff)
		managed.POST("/profiles", manage.CreateStaff)
		managed.GET("/kitchen/dashboard-stats", kitchen.DashboardStats)
		managed.GET("/kitchen/sales-report", kitchen.SalesReport)
	}

	return r
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < 8 || header[:7] != "Bearer " {
			c.AbortWithStatusJSON(401, gin.H{"message": "missing bearer token"})
			return
		}
		claims, err := utils.ParseToken(s.JWTSecret, header[7:])
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"message": "invalid or expired token"})
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

func (s *Server) getMenu(c *gin.Context) {
	var menus []Menu
	if err := s.DB.Order("category, name").Find(&menus).Error; err != nil {
		c.JSON(500, gin.H{"message": err.Error()})
		return
	}
	out := make([]interface{}, 0, len(menus))
	for i := range menus {
		out = append(out, menus[i].toWire())
	}
	c.JSON(200, out)
}

func (s *Server) seed() {
	var count int64
	s.DB.Model(&Menu{}).Count(&count)
	if count > 0 {
		return
	}

	menus := []Menu{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese skewers", Price: 180, Category: "Starters", ImageURL: "/images/paneer-tikka.jpg"},
		{Name: "Veg Spring Rolls", Description: "Crispy rolls with sweet chilli dip", Price: 120, Category: "Starters", ImageURL: "/images/spring-rolls.jpg"},
		{Name: "Pav Bhaji", Description: "Buttered pav with mashed vegetable curry", Price: 140, Category: "Heavy Snacks", ImageURL: "/images/pav-bhaji.jpg"},
		{Name: "Vada Pav", Description: "Mumbai's favourite potato slider", Price: 50, Category: "Heavy Snacks", ImageURL: "/images/vada-pav.jpg"},
		{Name: "Veg Fried Rice", Description: "Wok-tossed rice with vegetables", Price: 160, Category: "Rice & Noodles", ImageURL: "/images/fried-rice.jpg"},
		{Name: "Hakka Noodles", Description: "Street-style stir-fried noodles", Price: 150, Category: "Rice & Noodles", ImageURL: "/images/hakka-noodles.jpg"},
		{Name: "Masala Fries", Description: "Fries dusted with chaat masala", Price: 90, Category: "Sides", ImageURL: "/images/masala-fries.jpg"},
		{Name: "Sweet Lassi", Description: "Thick churned yogurt drink", Price: 70, Category: "Sides", ImageURL: "/images/lassi.jpg"},
	}
	for i := range menus {
		s.DB.Create(&menus[i])
	}

	s.DB.Create(&Branch{Name: "MG Road", Address: "12 MG Road"})
	ingredients := []Ingredient{
		{Branch: "MG Road", Name: "Paneer", Quantity: 25, Unit: "kg"},
		{Branch: "MG Road", Name: "Potatoes", Quantity: 80, Unit: "kg"},
		{Branch: "MG Road", Name: "Pav Buns", Quantity: 8, Unit: "dozen"},
		{Branch: "MG Road", Name: "Noodles", Quantity: 30, Unit: "kg"},
	}
	for i := range ingredients {
		s.DB.Create(&ingredients[i])
	}
}
