package commands

import (
	"fmt"
	"path/filepath"

	"altnews/internal/config"
	"altnews/internal/i18n"
	"altnews/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cartItemName   string
	cartItemAmount float64
	cartItemQty    int
	cartItemImage  string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the edition cart",
	Long:  "Add single editions to the cart and review them before checkout.",
	RunE:  runCartList,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cart contents",
	RunE:  runCartList,
}

func runCartList(cmd *cobra.Command, args []string) error {
	cart, err := loadCart()
	if err != nil {
		fmt.Println("Error loading cart:", err)
		return nil
	}

	if len(cart.Items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}

	cfg, _ := currentConfig()
	lang := sessionLang(cfg)
	for _, item := range cart.Items {
		color.New(color.Bold).Printf("%s", item.Name)
		fmt.Printf("  x%d - %s\n", item.Quantity, i18n.FormatPrice(item.Amount, "", lang))
		fmt.Printf("  id: %s\n", item.ID)
	}
	fmt.Printf("\nTotal: %d item(s), %s\n",
		cart.TotalItems(), i18n.FormatPrice(cart.TotalAmount(), "", lang))
	return nil
}

var cartAddCmd = &cobra.Command{
	Use:   "add <edition-id>",
	Short: "Add an edition to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := loadCart()
		if err != nil {
			fmt.Println("Error loading cart:", err)
			return nil
		}

		cart.Add(models.CartItem{
			ID:       args[0],
			Name:     cartItemName,
			Amount:   cartItemAmount,
			Quantity: cartItemQty,
			Image:    cartItemImage,
		})
		if err := cart.Save(); err != nil {
			fmt.Println("Error saving cart:", err)
			return nil
		}

		fmt.Printf("Added %s (%d item(s) in cart)\n", args[0], cart.TotalItems())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <edition-id>",
	Short: "Remove an edition from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := loadCart()
		if err != nil {
			fmt.Println("Error loading cart:", err)
			return nil
		}

		if err := cart.Remove(args[0]); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if err := cart.Save(); err != nil {
			fmt.Println("Error saving cart:", err)
			return nil
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var cartQuantityCmd = &cobra.Command{
	Use:   "quantity <edition-id> <count>",
	Short: "Set the quantity of an edition in the cart",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var count int
		if _, err := fmt.Sscanf(args[1], "%d", &count); err != nil || count < 1 {
			fmt.Println("Invalid quantity:", args[1])
			return nil
		}

		cart, err := loadCart()
		if err != nil {
			fmt.Println("Error loading cart:", err)
			return nil
		}

		if err := cart.UpdateQuantity(args[0], count); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if err := cart.Save(); err != nil {
			fmt.Println("Error saving cart:", err)
			return nil
		}

		fmt.Printf("Set %s to x%d\n", args[0], count)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := loadCart()
		if err != nil {
			fmt.Println("Error loading cart:", err)
			return nil
		}

		cart.Clear()
		if err := cart.Save(); err != nil {
			fmt.Println("Error saving cart:", err)
			return nil
		}

		fmt.Println("Cart cleared")
		return nil
	},
}

func loadCart() (*models.Cart, error) {
	configDir, err := config.GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}
	return models.LoadCart(filepath.Join(configDir, "cart.json"))
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartQuantityCmd)
	cartCmd.AddCommand(cartClearCmd)

	cartAddCmd.Flags().StringVar(&cartItemName, "name", "", "Edition name")
	cartAddCmd.Flags().Float64Var(&cartItemAmount, "amount", 0, "Unit price")
	cartAddCmd.Flags().IntVar(&cartItemQty, "quantity", 1, "Quantity")
	cartAddCmd.Flags().StringVar(&cartItemImage, "image", "", "Cover image URL")
}
