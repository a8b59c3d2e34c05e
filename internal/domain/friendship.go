package domain

const FriendshipAccepted = "accepted"
