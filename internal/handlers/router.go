package handlers

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-carousel/internal/metrics"
	"github.com/justsurfingit/job-carousel/internal/middleware"
	"github.com/justsurfingit/job-carousel/internal/services"
	"github.com/justsurfingit/job-carousel/internal/views"
)

type RouterOptions struct {
	Logger       logrus.FieldLogger
	Limiter      *middleware.RateLimiter
	AllowOrigins []string
}

// NewRouter wires the HTML page, the JSON API and /metrics onto one engine.
// Routes that call the remote store sit behind the rate limiter.
func NewRouter(tracker *services.TrackerService, opts RouterOptions) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Limiter == nil {
		opts.Limiter = middleware.NewRateLimiter(0, 0, opts.Logger)
	}

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	// Route on the escaped path so an id holding "/" stays one segment.
	r.UseRawPath = true
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(opts.Logger), metrics.Middleware())
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))
	r.SetHTMLTemplate(tmpl)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	page := NewTrackerHandler(tracker, opts.Logger)
	limited := opts.Limiter.Handler()

	r.GET("/", page.Page)
	r.POST("/refresh", limited, page.Refresh)
	r.POST("/applications", limited, page.Submit)
	r.POST("/applications/cancel-edit", page.CancelEdit)
	r.POST("/applications/extract", limited, page.Extract)
	r.POST("/applications/:id/edit", page.Edit)
	r.POST("/applications/:id/delete", limited, page.Delete)
	r.GET("/filter", page.Filter)
	r.GET("/filter/:status", page.Filter)
	r.POST("/carousel/next", page.Next)
	r.POST("/carousel/prev", page.Prev)
	r.POST("/carousel/goto/:index", page.GoTo)
	r.POST("/carousel/swipe", page.Swipe)
	r.POST("/viewport", page.Viewport)
	r.POST("/notifications/:id/dismiss", page.DismissNotification)

	api := NewAPIHandler(tracker)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", HealthCheck)
		v1.GET("/state", api.State)
		v1.POST("/refresh", limited, api.Refresh)

		v1.POST("/applications", limited, api.CreateApplication)
		v1.POST("/applications/extract", limited, api.Extract)
		v1.DELETE("/applications/:id", limited, api.DeleteApplication)

		v1.DELETE("/notifications/:id", api.DismissNotification)

		v1.POST("/filter", api.Filter)
		v1.POST("/carousel/:action", api.Carousel)
		v1.POST("/viewport", api.Viewport)
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	return config
}
