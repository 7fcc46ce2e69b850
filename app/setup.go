package app

import (
	"fmt"

	"coursemaster/api"
	"coursemaster/config"
	"coursemaster/database"
	"coursemaster/router"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Open the local course store
	store, err := database.StartGORM(getEnv.DB_PATH)
	if err != nil {
		print("Failed to open the local course store\n")
		print("Check that the DB_PATH location is writable\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize the course store table\n")
		return err
	}

	// Defer Closing the store
	defer store.Close()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (middleware is attached inside)
	router.SetupRoutes(app, store, getEnv)

	// Get the PORT & Start the Server
	return server.Run()
}
