package entities

type SendEmailCampaign struct {
	Header EventHeader `json:"header"`

	CampaignID  int64  `json:"campaign_id"`
	RequestedBy string `json:"requested_by"`
}
