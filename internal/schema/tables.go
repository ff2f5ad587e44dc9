package schema

import (
	"strconv"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

var tables = []Table{
	{
		Name: "users", Entity: "user",
		Columns: []Column{
			id(),
			varchar("email", 64).unique(),
			varchar("password", 128).withDefault("''"),
			timestamp("last_login").null(),
			varchar("name", 64),
			varchar("surname", 64),
			varchar("phone", 16),
			varchar("avatar", 255).null(),
			date("birth").null(),
			date("since"),
			boolean("is_superuser"),
		},
	},
	{
		Name: "addresses", Entity: "address",
		Columns: []Column{
			id(),
			ref("user_id", "users", SetNull),
			coordinate("latitude", 90),
			coordinate("longitude", 180),
			varchar("address", 255),
			varchar("address2", 255).withDefault("''"),
			varchar("city", 255),
			count("pin"),
		},
	},
	{
		Name: "shops", Entity: "shop",
		Columns: []Column{
			id(),
			varchar("name", 255),
			text("description"),
			varchar("email", 254).unique(),
			varchar("phone", 255),
			{Name: "opens_at", Type: TypeTime, Default: "'00:00'"},
			{Name: "closes_at", Type: TypeTime, Default: "'00:00'"},
			boolean("unavailable"),
			count("pin"),
			varchar("address", 255),
			varchar("address2", 255).withDefault("''"),
			varchar("city", 255),
			coordinate("latitude", 90),
			coordinate("longitude", 180),
			price("delivery_cost", 6, 2),
			count("delivery_range").withDefault("0"),
			varchar("image", 255),
		},
	},
	{
		Name: "products", Entity: "product",
		Columns: []Column{
			id(),
			varchar("name", 255),
			varchar("slug", 50).null(),
			zero("rating", 3, 2).null(),
			date("last_update"),
			text("description"),
			text("images"),
		},
	},
	{
		Name: "models", Entity: "model",
		Columns: []Column{
			id(),
			ref("product_id", "products", Cascade),
			varchar("model", 32).null(),
			count("qmin"),
			count("qmax"),
			price("price", 10, 2),
		},
	},
	{
		Name: "deliveries", Entity: "delivery",
		Columns: []Column{
			id(),
			ref("user_id", "users", Cascade),
			count("tasks"),
			zero("miles", 4, 1),
			zero("rating", 3, 2),
			date("since"),
			jsonDocument("shops"),
		},
	},
	{
		Name: "orders", Entity: "order",
		Columns: []Column{
			id(),
			timestamp("placed_at"),
			enum("status", 8, models.Strings(models.OrderStatuses), string(models.StatusPending)),
			ref("user_id", "users", SetNull),
			zero("gross", 10, 2).withDefault("0"),
			jsonDocument("coupons"),
			zero("tax", 10, 2).withDefault("0"),
			zero("discount", 10, 2).withDefault("0"),
			zero("delivery_cost", 10, 2).withDefault("0"),
			zero("amount", 10, 2).withDefault("0"),
			boolean("reviewed"),
			jsonDocument("cart"),
			ref("shop_id", "shops", SetNull),
			ref("address_id", "addresses", SetNull),
			ref("delivery_id", "deliveries", SetNull),
		},
	},
	{
		Name: "reviews", Entity: "review",
		Columns: []Column{
			id(),
			ref("user_id", "users", SetNull),
			ref("order_id", "orders", SetNull),
			enum("target_kind", 8, models.Strings(models.TargetKinds), string(models.TargetOrder)),
			{Name: "target_id", Type: TypeID, Check: "target_id > 0"},
			count("score"),
			timestamp("created_at"),
			text("review"),
		},
	},
	{
		Name: "payments", Entity: "payment",
		Columns: []Column{
			id(),
			timestamp("paid_at"),
			ref("order_id", "orders", SetNull).unique(),
			enum("payment_mode", 8, models.Strings(models.PaymentModes), string(models.ModePersonal)),
			price("amount", 10, 2),
		},
	},
	{
		Name: "coupons", Entity: "coupon",
		Columns: []Column{
			id().withDefault(strconv.FormatInt(models.DefaultCouponID, 10)),
			count("limit_uses").withDefault("1"),
			enum("limit_basis", 5, models.Strings(models.LimitBases), string(models.LimitTimes)),
			date("expires").null(),
			jsonDocument("discount"),
		},
	},
}
