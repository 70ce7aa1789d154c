package cli

import (
	"context"
	"fmt"

	"github.com/example/choreboard/internal/models"
)

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *Context) error {
	bg := context.Background()
	users, err := ctx.Services.Users.List(bg)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	fmt.Println("Users:")
	for _, u := range users {
		img := ""
		if u.ImagePath != "" {
			img = "  " + ctx.Services.Images.UserImageURL(u.ID)
		}
		fmt.Printf("  %d  %s%s\n", u.ID, u.Name, img)
	}
	return nil
}

type UserShowCmd struct {
	UUID string `arg:"" help:"User uuid."`
}

func (c *UserShowCmd) Run(ctx *Context) error {
	bg := context.Background()
	user, err := ctx.Services.Users.Get(bg, c.UUID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %d)\n", user.Name, user.ID)
	fmt.Printf("  uuid:   %s\n", user.UUID)
	fmt.Printf("  joined: %s\n", user.CreatedAt.Format("Jan 2, 2006"))
	if user.ImagePath != "" {
		fmt.Printf("  image:  %s\n", ctx.Services.Images.UserImageURL(user.ID))
	}
	return nil
}

type UserAddCmd struct {
	Name string `arg:"" help:"Display name for the new user."`
}

func (c *UserAddCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	user, err := ctx.Services.Users.Create(bg, models.UserInput{Name: c.Name})
	if err != nil {
		return err
	}
	fmt.Printf("Added user: %s (ID: %d)\n", user.Name, user.ID)
	return nil
}

type UserImageSetCmd struct {
	User string `arg:"" help:"User name or id."`
	Path string `arg:"" type:"existingfile" help:"Image file to upload."`
}

func (c *UserImageSetCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}
	if err := ctx.Services.Images.Upload(bg, user.UUID, c.Path); err != nil {
		return err
	}
	fmt.Printf("Updated image for %s\n", user.Name)
	return nil
}

type UserImageRemoveCmd struct {
	User string `arg:"" help:"User name or id."`
}

func (c *UserImageRemoveCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}
	if err := ctx.Services.Images.Remove(bg, user.UUID); err != nil {
		return err
	}
	fmt.Printf("Removed image for %s\n", user.Name)
	return nil
}
