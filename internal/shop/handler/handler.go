package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/shop"
	"github.com/fekuna/gardentrack/internal/shop/dto"
	"github.com/fekuna/gardentrack/internal/ui"
	"github.com/fekuna/gardentrack/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ShopHandler struct {
	uc     shop.UseCase
	src    view.Source
	logger logger.ZapLogger
}

func NewShopHandler(uc shop.UseCase, src view.Source, log logger.ZapLogger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		src:    src,
		logger: log,
	}
}

func (h *ShopHandler) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the garden shop catalog",
	}
	list := h.listCommand()
	cmd.RunE = list.RunE
	cmd.AddCommand(
		list,
		h.addCommand(),
		h.updateCommand(),
		h.statusCommand(),
		ui.RequireAuth(&cobra.Command{
			Use:     "remove <id>",
			Aliases: []string{"rm"},
			Short:   "Remove a shop item",
			Args:    cobra.ExactArgs(1),
			RunE:    h.remove,
		}),
	)
	return cmd
}

func (h *ShopHandler) listCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shop items, optionally by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := model.ShopCategory(category)
			if cat == "all" {
				cat = ""
			}
			if cat != "" && !cat.IsValid() {
				return fmt.Errorf("%w: unknown category %q", model.ErrValidation, category)
			}
			h.renderCatalog(cmd, cat)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "produce, seedlings or inputs (default all)")
	return cmd
}

func (h *ShopHandler) renderCatalog(cmd *cobra.Command, category model.ShopCategory) {
	entries := view.ShopCatalog(h.src, category)
	counts := view.CategoryCounts(h.src)

	tabs := []string{fmt.Sprintf("All (%d)", len(h.src.ShopItems()))}
	for _, c := range model.ShopCategories {
		tabs = append(tabs, fmt.Sprintf("%s (%d)", c.Label(), counts[c]))
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		price := ui.Money(e.Item.Currency, e.Item.Price)
		if e.OnSale {
			price = fmt.Sprintf("%s (was %s, -%s%%)",
				ui.Money(e.Item.Currency, e.SalePrice),
				ui.Money(e.Item.Currency, e.Item.Price),
				strconv.FormatFloat(*e.Item.SalePercent, 'f', -1, 64))
		}
		rows = append(rows, []string{
			e.Item.ID,
			e.Item.Name,
			e.Item.Category.Label(),
			price,
			strconv.Itoa(e.Item.Quantity),
			ui.ShopStatusBadge(e.Item.Status),
		})
	}

	ui.Println(cmd, ui.Title("Garden Shop", strings.Join(tabs, " · ")))
	ui.Println(cmd, ui.Table(
		[]string{"ID", "Item", "Category", "Price", "Qty", "Status"},
		rows,
		"No items in this category.",
	))
}

func (h *ShopHandler) addCommand() *cobra.Command {
	input := &dto.CreateShopItemInput{}
	var category, image string
	var price float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "List a new item for sale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")
			input.Category = model.ShopCategory(category)
			if cmd.Flags().Changed("price") {
				input.Price = &price
			}
			if image != "" {
				input.ImageURL = &image
			}

			item, err := h.uc.CreateShopItem(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("create shop item rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success(fmt.Sprintf("Listed %q at %s (%s)",
				item.Name, ui.Money(item.Currency, item.Price), item.ID)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "price (required)")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryProduce), "produce, seedlings or inputs")
	cmd.Flags().StringVar(&input.Description, "description", "", "description")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 0, "units available")
	cmd.Flags().StringVar(&image, "image", "", "image reference")
	return ui.RequireAuth(cmd)
}

func (h *ShopHandler) updateCommand() *cobra.Command {
	var (
		name, description, category, status, image string
		price, percent                              float64
		quantity                                    int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a shop item; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := h.uc.GetShopItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			input := &dto.UpdateShopItemInput{
				ID:          current.ID,
				Name:        current.Name,
				Description: current.Description,
				Category:    current.Category,
				Price:       &current.Price,
				Quantity:    current.Quantity,
				Status:      current.Status,
				SalePercent: current.SalePercent,
				ImageURL:    current.ImageURL,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				input.Name = name
			}
			if flags.Changed("description") {
				input.Description = description
			}
			if flags.Changed("category") {
				input.Category = model.ShopCategory(category)
			}
			if flags.Changed("price") {
				input.Price = &price
			}
			if flags.Changed("quantity") {
				input.Quantity = quantity
			}
			if flags.Changed("status") {
				input.Status = model.ShopStatus(status)
			}
			if flags.Changed("percent") {
				input.SalePercent = &percent
			}
			if flags.Changed("image") {
				input.ImageURL = nil
				if image != "" {
					input.ImageURL = &image
				}
			}

			updated, err := h.uc.UpdateShopItem(cmd.Context(), input)
			if err != nil {
				h.logger.Debug("update shop item rejected", zap.Error(err))
				return err
			}
			ui.Println(cmd, ui.Success("Updated "+updated.Name))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "item name")
	flags.StringVar(&description, "description", "", "description")
	flags.StringVar(&category, "category", "", "produce, seedlings or inputs")
	flags.Float64Var(&price, "price", 0, "price")
	flags.IntVar(&quantity, "quantity", 0, "units available")
	flags.StringVar(&status, "status", "", "in-stock, sale or out-of-stock")
	flags.Float64Var(&percent, "percent", model.DefaultSalePercent, "discount percent when on sale")
	flags.StringVar(&image, "image", "", "image reference; empty clears it")
	return ui.RequireAuth(cmd)
}

func (h *ShopHandler) statusCommand() *cobra.Command {
	var percent float64

	cmd := &cobra.Command{
		Use:   "status <id> <in-stock|sale|out-of-stock>",
		Short: "Change an item's stock status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &dto.ChangeStatusInput{ID: args[0], Status: model.ShopStatus(args[1])}
			if cmd.Flags().Changed("percent") {
				input.SalePercent = &percent
			}

			item, err := h.uc.ChangeStatus(cmd.Context(), input)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("%s is now %s", item.Name, item.Status.Label())
			if p, ok := item.SalePrice(); ok {
				msg += fmt.Sprintf(" at %s", ui.Money(item.Currency, p))
			}
			ui.Println(cmd, ui.Success(msg))
			return nil
		},
	}
	cmd.Flags().Float64Var(&percent, "percent", model.DefaultSalePercent, "discount percent for sale")
	return ui.RequireAuth(cmd)
}

func (h *ShopHandler) remove(cmd *cobra.Command, args []string) error {
	if err := h.uc.DeleteShopItem(cmd.Context(), args[0]); err != nil {
		return err
	}
	ui.Println(cmd, ui.Success("Removed shop item "+args[0]))
	return nil
}
