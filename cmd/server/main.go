package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/config"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	// ✅ Inicializar os prepared statements dos caminhos quentes
	database.InitPreparedStatements()

	// ✅ Pré-aquecer o cache Redis
	warmupRedisCache()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Servidor Menu-Web rodando na porta", port)
	r.Run(":" + port)
}

// warmupRedisCache evita a latência da primeira chamada ao Redis
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-aquecido")
	}
}
