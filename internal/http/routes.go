package http

import (
	"net/http"

	"language_connect/internal/gateway"
	"language_connect/internal/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIRoutes maps every action to its handler. The method is ignored except
// for chats and messages, where POST creates and anything else lists.
func APIRoutes(h *handlers.Handler) gateway.Routes {
	return gateway.Routes{
		{Action: gateway.ActionRegister}:                          h.Register,
		{Action: gateway.ActionLogin}:                             h.Login,
		{Action: gateway.ActionUsers}:                             h.SearchUsers,
		{Action: gateway.ActionUser}:                              h.GetUser,
		{Action: gateway.ActionUpdateUser}:                        h.UpdateUser,
		{Action: gateway.ActionChats, Method: http.MethodPost}:    h.CreateChat,
		{Action: gateway.ActionChats}:                             h.ListChats,
		{Action: gateway.ActionMessages, Method: http.MethodPost}: h.SendMessage,
		{Action: gateway.ActionMessages}:                          h.ListMessages,
		{Action: gateway.ActionAchievements}:                      h.ListAchievements,
		{Action: gateway.ActionAddFriend}:                         h.AddFriend,
		{Action: gateway.ActionLessons}:                           h.ListLessons,
		{Action: gateway.ActionCompleteLesson}:                    h.CompleteLesson,
		{Action: gateway.ActionSendGift}:                          h.SendGift,
		{Action: gateway.ActionGifts}:                             h.ListGifts,
	}
}

// RegisterRoutes mounts the API and translation handlers plus the
// operational endpoints on r.
func RegisterRoutes(r *gin.Engine, api, translate gateway.EventHandler, health *handlers.HealthHandler) {
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Any("/", gateway.Gin(api))
	r.Any("/users/:id", gateway.Gin(api))
	r.Any("/translate", gateway.Gin(translate))
}
