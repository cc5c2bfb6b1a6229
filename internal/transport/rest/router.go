package rest

import "net/http"

// RouterDeps bundles the handlers mounted by NewRouter.
type RouterDeps struct {
	Auth      *AuthHandler
	Wines     *WineHandler
	Reference *ReferenceHandler
	Health    *HealthHandler

	// ImageDir, when set, is served read-only under ImageBaseURL.
	ImageDir     string
	ImageBaseURL string
}

// NewRouter mounts every REST route on a fresh mux. Authentication is applied
// outside (see the middleware package); wine routes reject anonymous requests
// at the service layer.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("POST /auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", deps.Auth.Logout)

	mux.HandleFunc("POST /wines", deps.Wines.Add)
	mux.HandleFunc("GET /wines", deps.Wines.List)
	mux.HandleFunc("GET /wines/{id}", deps.Wines.Get)
	mux.HandleFunc("PUT /wines/{id}", deps.Wines.Update)
	mux.HandleFunc("DELETE /wines/{id}", deps.Wines.Delete)
	mux.HandleFunc("POST /wines/{id}/image", deps.Wines.AttachImage)

	mux.HandleFunc("GET /reference/countries", deps.Reference.Countries)
	mux.HandleFunc("GET /reference/regions", deps.Reference.Regions)
	mux.HandleFunc("GET /reference/grapes", deps.Reference.Grapes)

	if deps.ImageDir != "" {
		prefix := deps.ImageBaseURL
		if prefix == "" {
			prefix = "/images"
		}
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix+"/",
			http.FileServer(http.Dir(deps.ImageDir))))
	}

	return mux
}
