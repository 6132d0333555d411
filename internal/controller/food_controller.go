package controller

import (
	"image"
	"io"
	"mime/multipart"
	"strings"

	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/internal/service"
	"healthsphere-ml-be/pkg/imaging"

	"github.com/gofiber/fiber/v2"
)

type IFoodController interface {
	RegisterRoutes(r fiber.Router)
	Recognize(ctx *fiber.Ctx) error
	RecognizeBatch(ctx *fiber.Ctx) error
	NutritionInfo(ctx *fiber.Ctx) error
}

type foodController struct {
	foodService service.IFoodService
}

func NewFoodController(foodService service.IFoodService) IFoodController {
	return &foodController{
		foodService: foodService,
	}
}

func (c *foodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/food-recognition")
	h.Post("", c.Recognize)
	h.Post("/batch", c.RecognizeBatch)
	h.Get("/nutrition/:food_name", c.NutritionInfo)
}

func (c *foodController) Recognize(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return serverutils.NewValidationError("multipart field 'image' is required")
	}

	if !isImage(fileHeader) {
		return serverutils.NewValidationError("file must be an image")
	}

	img, err := normalizeUpload(fileHeader)
	if err != nil {
		return serverutils.NewValidationError("could not decode image: %v", err)
	}

	userId := ctx.FormValue("user_id")

	res, err := c.foodService.RecognizeFood(ctx.Context(), img, userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

// RecognizeBatch processes the multipart 'images' files. Entries that are not
// decodable images are skipped rather than failing the batch.
func (c *foodController) RecognizeBatch(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return serverutils.NewValidationError("multipart form is required")
	}

	files := form.File["images"]
	userId := ctx.FormValue("user_id")

	results := make([]dto.FoodBatchItem, 0, len(files))
	for _, fileHeader := range files {
		if !isImage(fileHeader) {
			continue
		}

		img, err := normalizeUpload(fileHeader)
		if err != nil {
			continue
		}

		result, err := c.foodService.RecognizeFood(ctx.Context(), img, userId)
		if err != nil {
			return err
		}
		results = append(results, dto.FoodBatchItem{
			Filename: fileHeader.Filename,
			Result:   result,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse(&dto.FoodBatchResponse{
		Results:     results,
		TotalImages: len(results),
	}))
}

func (c *foodController) NutritionInfo(ctx *fiber.Ctx) error {
	foodName := ctx.Params("food_name")

	res, err := c.foodService.GetNutritionInfo(ctx.Context(), foodName)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func isImage(fileHeader *multipart.FileHeader) bool {
	contentType := fileHeader.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "image/")
}

func normalizeUpload(fileHeader *multipart.FileHeader) (*image.RGBA, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return imaging.Normalize(data)
}
