package i18n

// Idiomas soportados.
const (
	LangVI = "vi"
	LangEN = "en"
)

// translations tabla estática de mensajes por idioma. Una clave ausente no es
// error: Translate devuelve la clave tal cual.
var translations = map[string]map[string]string{
	LangVI: {
		// Navegación
		"nav.home":        "Trang chủ",
		"nav.menu":        "Thực đơn",
		"nav.about":       "Về chúng tôi",
		"nav.contact":     "Liên hệ",
		"nav.rewards":     "Đổi thưởng",
		"nav.login":       "Đăng nhập",
		"nav.logout":      "Đăng xuất",
		"nav.signup":      "Đăng ký",
		"demo.switchUser": "Chuyển người dùng",
		"demo.selectRole": "Chọn vai trò demo",
		"role.customer":   "Khách hàng",
		"role.staff":      "Nhân viên",
		"role.admin":      "Quản lý",

		// Hero
		"hero.title":    "Chào mừng đến với Cà Phê Sáng",
		"hero.subtitle": "Thưởng thức hương vị cà phê đậm đà trong không gian hiện đại",
		"hero.cta":      "Khám phá thực đơn",

		// Nosotros
		"about.title":       "Về Cà Phê Sáng",
		"about.description": "Chúng tôi là một quán cà phê nhỏ với tình yêu lớn dành cho cà phê. Mỗi tách cà phê được pha chế với tâm huyết và sự chăm sóc tỉ mỉ.",

		// Menú
		"menu.title":             "Thực đơn",
		"menu.categories.coffee": "Cà phê",
		"menu.categories.tea":    "Trà",
		"menu.categories.pastry": "Bánh ngọt",
		"menu.order":             "Đặt món",
		"menu.reviews":           "đánh giá",

		// Pedido
		"order.title":    "Đặt món",
		"order.quantity": "Số lượng",
		"order.notes":    "Ghi chú",
		"order.total":    "Tổng cộng",
		"order.submit":   "Gửi đơn",
		"order.success":  "Đặt món thành công!",

		// Puntos
		"points.your": "Điểm của bạn",
		"points.earn": "Tích điểm mỗi đơn hàng",

		// Recompensas
		"rewards.title":    "Đổi thưởng",
		"rewards.required": "điểm",
		"rewards.redeem":   "Đổi thưởng",

		// Estado
		"status.inStore": "Đang ở tiệm",
		"status.online":  "Trực tuyến",
	},
	LangEN: {
		// Navegación
		"nav.home":        "Home",
		"nav.menu":        "Menu",
		"nav.about":       "About",
		"nav.contact":     "Contact",
		"nav.rewards":     "Rewards",
		"nav.login":       "Login",
		"nav.logout":      "Logout",
		"nav.signup":      "Sign Up",
		"demo.switchUser": "Switch User",
		"demo.selectRole": "Select Demo Role",
		"role.customer":   "Customer",
		"role.staff":      "Staff",
		"role.admin":      "Admin",

		// Hero
		"hero.title":    "Welcome to Café Sáng",
		"hero.subtitle": "Experience rich coffee flavors in a modern space",
		"hero.cta":      "Explore Menu",

		// Nosotros
		"about.title":       "About Café Sáng",
		"about.description": "We are a small coffee shop with a big love for coffee. Each cup is crafted with passion and meticulous care.",

		// Menú
		"menu.title":             "Menu",
		"menu.categories.coffee": "Coffee",
		"menu.categories.tea":    "Tea",
		"menu.categories.pastry": "Pastry",
		"menu.order":             "Order",
		"menu.reviews":           "reviews",

		// Pedido
		"order.title":    "Place Order",
		"order.quantity": "Quantity",
		"order.notes":    "Notes",
		"order.total":    "Total",
		"order.submit":   "Submit Order",
		"order.success":  "Order placed successfully!",

		// Puntos
		"points.your": "Your Points",
		"points.earn": "Earn points on every order",

		// Recompensas
		"rewards.title":    "Rewards",
		"rewards.required": "points",
		"rewards.redeem":   "Redeem",

		// Estado
		"status.inStore": "In Store",
		"status.online":  "Online",
	},
}
