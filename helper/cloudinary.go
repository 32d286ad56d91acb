package helper

import (
	"fmt"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// PlayImagePublicId builds the upload public id from the play title, e.g.
// "hamlet-0c9b6f9e-...".
func PlayImagePublicId(title string) string {
	return fmt.Sprintf("%s-%s", slug.Make(title), uuid.New().String())
}
