package api

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/api/controller"
)

type Module struct{}

// Handler builds the router with the full route table. Dependencies are
// only touched once requests come in.
func (module *Module) Handler() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())

	/**
	 * Routes section.
	 * - All route definitions will go below this point.
	 */
	v1 := router.Group("/v1")
	v1.Use(Authorization())

	// Open routes; a token only widens what they show.
	v1.POST("/user", controller.UserRegister)
	v1.POST("/auth/get-token", controller.UserGetToken)
	v1.GET("/users/:id", ValidateBsonID("id"), controller.UserGetOne)
	v1.GET("/users/:id/ideas", ValidateBsonID("id"), controller.UserIdeas)
	v1.GET("/ideas", controller.Ideas)
	v1.GET("/ideas/:id", ValidateBsonID("id"), controller.IdeaGet)
	v1.GET("/ideas/:id/comments", ValidateBsonID("id"), controller.IdeaComments)
	v1.GET("/tags", controller.Tags)
	v1.GET("/tags/:title", controller.TagGet)

	authorized := v1.Group("")
	authorized.Use(NeedAuthorization(), UserMiddleware())

	authorized.GET("/user/my", controller.UserGetByToken)
	authorized.GET("/messages", controller.MessagesOverview)
	authorized.GET("/messages/:user_id", ValidateBsonID("user_id"), controller.Conversation)

	// Write operations stay closed to suspended accounts.
	active := authorized.Group("")
	active.Use(NotSuspended())

	active.PUT("/users/:id", ValidateBsonID("id"), controller.UserUpdate)
	active.DELETE("/users/:id", ValidateBsonID("id"), controller.UserDelete)
	active.POST("/users/:id/follow", ValidateBsonID("id"), controller.UserFollow)
	active.DELETE("/users/:id/follow", ValidateBsonID("id"), controller.UserUnfollow)

	active.POST("/ideas", controller.IdeaCreate)
	active.PUT("/ideas/:id", ValidateBsonID("id"), controller.IdeaUpdate)
	active.DELETE("/ideas/:id", ValidateBsonID("id"), controller.IdeaDelete)
	active.PATCH("/ideas/:id/react/:reaction", ValidateBsonID("id"), controller.React)
	active.DELETE("/ideas/:id/react/:reaction", ValidateBsonID("id"), controller.Unreact)

	active.POST("/ideas/:id/comments", ValidateBsonID("id"), controller.NewComment)
	active.PUT("/comments/:id", ValidateBsonID("id"), controller.UpdateComment)
	active.DELETE("/comments/:id", ValidateBsonID("id"), controller.DeleteComment)

	active.POST("/messages/:user_id", ValidateBsonID("user_id"), controller.NewMessage)
	active.PATCH("/messages/:user_id/read", ValidateBsonID("user_id"), controller.ReadConversation)
	active.PATCH("/messages/:user_id/unread", ValidateBsonID("user_id"), controller.UnreadConversation)
	active.DELETE("/messages/:user_id", ValidateBsonID("user_id"), controller.DeleteConversation)
	active.DELETE("/messages/:user_id/:id", ValidateBsonID("user_id", "id"), controller.DeleteMessage)

	active.POST("/reports", controller.NewReport)

	admin := active.Group("")
	admin.Use(NeedAdmin())

	admin.GET("/users", controller.Users)
	admin.GET("/comments", controller.Comments)
	admin.GET("/comments/:id", ValidateBsonID("id"), controller.CommentGet)
	admin.PUT("/config", controller.UpdateConfig)
	admin.GET("/reports", controller.Reports)
	admin.GET("/reports/:id", ValidateBsonID("id"), controller.ReportGet)
	admin.PATCH("/reports/:id/assign/:user_id", ValidateBsonID("id", "user_id"), controller.AssignReport)
	admin.PATCH("/reports/:id/status", ValidateBsonID("id"), controller.ReportStatus)
	admin.DELETE("/reports/:id", ValidateBsonID("id"), controller.DeleteReport)

	return router
}

func (module *Module) Run(bindTo string) {
	environment := deps.Container.Config().UString("environment", "development")
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Start the http server as an isolated goroutine.
	srv := &http.Server{
		Addr:    bindTo,
		Handler: module.Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()
	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	deps.Container.MgoSession().Close()
	log.Println("Server exiting")
}
