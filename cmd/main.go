package main

import (
	"github.com/luk14236/food-advice-agent/config"
	"github.com/luk14236/food-advice-agent/routes"
)

func main() {
	config.InitDB()
	defer config.CloseDB()

	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
