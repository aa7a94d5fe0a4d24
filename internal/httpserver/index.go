package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexTemplateName = "index"

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Service}}</title></head>
<body>
  <h1>{{.Service}}</h1>
  {{range .Resources}}
  <h2>{{.Label}}s</h2>
  <ul>
    <li><a href="{{.Path}}">GET {{.Path}}</a></li>
    <li>GET {{.Path}}/:id</li>
    <li>POST {{.Path}}{{if .RequireAuth}} (protected){{end}}</li>
    <li>PUT {{.Path}}/:id{{if .RequireAuth}} (protected){{end}}</li>
    <li>PATCH {{.Path}}/:id{{if .RequireAuth}} (protected){{end}}</li>
    <li>DELETE {{.Path}}/:id{{if .RequireAuth}} (protected){{end}}</li>
  </ul>
  {{end}}
  <p><a href="/swagger/index.html">API documentation</a></p>
</body>
</html>`

// index renders the route overview.
func (srv HTTPServer) index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplateName, gin.H{
		"Service":   ServiceName,
		"Resources": srv.resources,
	})
}
