package main

// @title Event Management API
// @version 1.0
// @description Users, events, attendance and feedback.
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	Execute()
}
