package models

// PexelsVideoList is the paged response envelope of the Pexels videos API.
type PexelsVideoList struct {
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	TotalResults int           `json:"total_results"`
	Videos       []PexelsVideo `json:"videos"`
}

// PexelsVideo is one catalog entry as delivered by the Pexels videos API.
type PexelsVideo struct {
	ID       int    `json:"id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Duration int    `json:"duration"`
	URL      string `json:"url"`
	Image    string `json:"image"`

	VideoFiles []struct {
		ID       int    `json:"id"`
		Quality  string `json:"quality"`
		FileType string `json:"file_type"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Link     string `json:"link"`
	} `json:"video_files"`

	VideoPictures []struct {
		ID      int    `json:"id"`
		Picture string `json:"picture"`
	} `json:"video_pictures"`
}

// ToVideo maps a catalog entry onto the local document model with zeroed
// engagement state. Re-ingestion never overwrites an existing document, so
// the zeroes only ever apply to newly-seen videos.
func (p *PexelsVideo) ToVideo() *Video {
	video := &Video{
		PexelsID:      p.ID,
		Width:         p.Width,
		Height:        p.Height,
		Duration:      p.Duration,
		URL:           p.URL,
		Image:         p.Image,
		LikesCount:    0,
		AverageRating: 0,
		Ratings:       []Rating{},
		Comments:      []Comment{},
	}
	for _, f := range p.VideoFiles {
		video.VideoFiles = append(video.VideoFiles, VideoFile{
			Quality:  f.Quality,
			Width:    f.Width,
			Height:   f.Height,
			FileType: f.FileType,
			Link:     f.Link,
		})
	}
	for _, pic := range p.VideoPictures {
		video.VideoPictures = append(video.VideoPictures, VideoPicture{
			PictureID: pic.ID,
			Picture:   pic.Picture,
		})
	}
	return video
}
