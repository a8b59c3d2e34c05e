package gateway

// Action selects the operation a request invokes. It arrives as the
// "action" query parameter.
type Action string

const (
	ActionRegister       Action = "register"
	ActionLogin          Action = "login"
	ActionUsers          Action = "users"
	ActionUser           Action = "user"
	ActionUpdateUser     Action = "update_user"
	ActionChats          Action = "chats"
	ActionMessages       Action = "messages"
	ActionAchievements   Action = "achievements"
	ActionAddFriend      Action = "add_friend"
	ActionLessons        Action = "lessons"
	ActionCompleteLesson Action = "complete_lesson"
	ActionSendGift       Action = "send_gift"
	ActionGifts          Action = "gifts"
)

// AllActions lists every API action. Route tables are checked against it.
func AllActions() []Action {
	return []Action{
		ActionRegister,
		ActionLogin,
		ActionUsers,
		ActionUser,
		ActionUpdateUser,
		ActionChats,
		ActionMessages,
		ActionAchievements,
		ActionAddFriend,
		ActionLessons,
		ActionCompleteLesson,
		ActionSendGift,
		ActionGifts,
	}
}

// Route keys the handler table. An empty Method matches any method.
type Route struct {
	Action Action
	Method string
}

type Routes map[Route]HandlerFunc

// lookup prefers an exact method match over an any-method route.
func (r Routes) lookup(action Action, method string) HandlerFunc {
	if h, ok := r[Route{Action: action, Method: method}]; ok {
		return h
	}
	return r[Route{Action: action}]
}

// Missing returns the actions from want that have no route at all.
func (r Routes) Missing(want []Action) []Action {
	have := make(map[Action]bool, len(r))
	for route := range r {
		have[route.Action] = true
	}
	var missing []Action
	for _, a := range want {
		if !have[a] {
			missing = append(missing, a)
		}
	}
	return missing
}
