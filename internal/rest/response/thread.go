package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedThread struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type Thread struct {
	Thread domain.DetailThread `json:"thread"`
}

type AddedComment struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReply struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type AddedUser struct {
	AddedUser domain.AddedUser `json:"addedUser"`
}

type Token struct {
	AccessToken string `json:"accessToken"`
}
