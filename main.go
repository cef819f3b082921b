package main

import "github.com/podhaven/ingest-api/cmd"

// @title           PodHaven Ingest API
// @version         1.0.0
// @description     API for uploading, importing and serving podcast episodes
// @contact.name    API Support
// @contact.url     https://github.com/podhaven/ingest-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
