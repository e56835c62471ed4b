package response

type Paginate struct {
	Limit  *int32 `json:"limit" query:"limit" validate:"omitempty,gte=1,lte=1000"`
	Offset *int32 `json:"offset" query:"offset" validate:"omitempty,gte=0"`
}
