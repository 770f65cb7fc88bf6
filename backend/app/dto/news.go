package dto

type NewsRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	TitleAr       string `json:"titleAr" validate:"required,max=200"`
	Description   string `json:"description" validate:"required"`
	DescriptionAr string `json:"descriptionAr" validate:"required"`
	PublishDate   string `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,max=512"`
}

type NewsResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	PublishDate   string `json:"publishDate"`
	ImageURL      string `json:"imageUrl"`
	Status        string `json:"status"`
	AuthorName    string `json:"authorName"`
}
