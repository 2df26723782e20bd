package tui

import (
	"testing"

	"automarket/internal/domain/entity"
	"automarket/internal/errors"
	mockUsecase "automarket/internal/mocks/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestProductsScreen_Create(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantToast string
		wantOpen  bool
	}{
		{
			name:      "created product reloads the list",
			wantToast: "Product created successfully",
		},
		{
			name:      "failed create keeps the form open",
			createErr: errors.New("boom"),
			wantToast: "Failed to create product",
			wantOpen:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDashboard(t, func(uc *mockUsecase.MockDashboardUsecase) {
				expectInitialLoad(uc, activeAgent())
			})
			created := &entity.Product{ID: 12, Name: "Course Pack", ProductType: entity.ProductTypeTemplate, Price: 25, IsActive: true}
			d.uc.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *entity.CreateProductInput) bool {
				return in.Name == "Course Pack" &&
					in.Description == "Video course" &&
					in.Price == 25 &&
					in.ProductType == entity.ProductTypeTemplate &&
					in.Content == "https://example.com/course" &&
					*in.IsActive && !*in.AIEnabled
			})).Return(created, tt.createErr).Once()
			if tt.createErr == nil {
				d.uc.EXPECT().ListProducts(mock.Anything).Return(append(testProducts, created), nil).Once()
			}

			d.press(t, runes("2"), runes("n"))
			products := d.model.products()
			require.NotNil(t, products.form)
			require.True(t, products.capturing())
			assert.Contains(t, d.model.View(), "New product")

			// global keys are typed into the form
			d.press(t, runes("Course Pack"), keyTab, runes("Video course"), keyTab, runes("25"), keyTab)
			assert.False(t, d.quit)
			// type, active and AI keep their defaults
			d.press(t, keyTab, runes("https://example.com/course"), keyTab, keyTab, keyEnter)

			require.NotNil(t, d.model.toast)
			assert.Equal(t, tt.wantToast, d.model.toast.text)
			if tt.wantOpen {
				require.NotNil(t, products.form)
				assert.False(t, products.form.saving)
				assert.Len(t, products.products, 2)

				return
			}
			assert.Nil(t, products.form)
			assert.Len(t, products.products, 3)
		})
	}
}

func TestProductsScreen_CreateValidation(t *testing.T) {
	d := newTestDashboard(t, func(uc *mockUsecase.MockDashboardUsecase) {
		expectInitialLoad(uc, activeAgent())
	})

	d.press(t, runes("2"), runes("n"), keySave)
	products := d.model.products()
	require.NotNil(t, products.form)
	assert.Equal(t, "price must be a number of zero or more", products.form.problem)

	d.press(t, keyTab, keyTab, runes("5"), keySave)
	assert.Contains(t, products.form.problem, "Name failed on required")
	assert.Contains(t, products.form.problem, "Content failed on required")
	assert.Contains(t, d.model.View(), "Content failed on required")

	// typing clears the message; esc discards the form
	d.press(t, runes("0"))
	assert.Empty(t, products.form.problem)
	d.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, products.form)
	assert.False(t, products.capturing())
	assert.Nil(t, d.model.toast)
}

func TestProductsScreen_Edit(t *testing.T) {
	stored := &entity.Product{
		ID:          11,
		Name:        "Netflix Account",
		Description: "Shared plan",
		ProductType: entity.ProductTypeAccount,
		Price:       4,
		Content:     "user:pass",
		AIEnabled:   true,
	}

	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		wantPrice float64
		updateErr error
		wantToast string
		wantOpen  bool
	}{
		{
			name:      "changed price is the only field sent",
			keys:      []tea.KeyMsg{keyTab, keyTab, {Type: tea.KeyBackspace}, runes("6"), keySave},
			wantPrice: 6,
			wantToast: "Product updated successfully",
		},
		{
			name:      "failed update keeps the form open",
			keys:      []tea.KeyMsg{keyTab, keyTab, runes("0"), keySave},
			wantPrice: 40,
			updateErr: errors.New("boom"),
			wantToast: "Failed to update product",
			wantOpen:  true,
		},
		{
			name: "unchanged form closes without saving",
			keys: []tea.KeyMsg{keySave},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDashboard(t, func(uc *mockUsecase.MockDashboardUsecase) {
				expectInitialLoad(uc, activeAgent())
			})
			d.uc.EXPECT().GetProduct(mock.Anything, int64(11)).Return(stored, nil).Once()
			if tt.wantPrice != 0 {
				d.uc.EXPECT().UpdateProduct(mock.Anything, int64(11), mock.MatchedBy(func(in *entity.UpdateProductInput) bool {
					return in.Price != nil && *in.Price == tt.wantPrice &&
						in.Name == nil && in.Content == nil && in.ProductType == nil &&
						in.IsActive == nil && in.AIEnabled == nil
				})).Return(stored, tt.updateErr).Once()
			}
			if tt.wantToast != "" && tt.updateErr == nil {
				d.uc.EXPECT().ListProducts(mock.Anything).Return(testProducts, nil).Once()
			}

			d.press(t, runes("2"), tea.KeyMsg{Type: tea.KeyDown}, runes("e"))
			products := d.model.products()
			require.NotNil(t, products.form)
			assert.Contains(t, d.model.View(), "Edit product #11")
			assert.Equal(t, "user:pass", products.form.value(fieldContent))
			assert.Equal(t, "n", products.form.value(fieldActive))
			assert.Equal(t, "y", products.form.value(fieldAI))

			d.press(t, tt.keys...)

			if tt.wantToast == "" {
				assert.Nil(t, d.model.toast)
				assert.Nil(t, products.form)

				return
			}
			require.NotNil(t, d.model.toast)
			assert.Equal(t, tt.wantToast, d.model.toast.text)
			assert.Equal(t, tt.wantOpen, products.form != nil)
		})
	}
}

func TestProductsScreen_EditFetchFailure(t *testing.T) {
	d := newTestDashboard(t, func(uc *mockUsecase.MockDashboardUsecase) {
		expectInitialLoad(uc, activeAgent())
	})
	d.uc.EXPECT().GetProduct(mock.Anything, int64(10)).Return(nil, errors.New("gone")).Once()

	d.press(t, runes("2"), runes("e"))
	products := d.model.products()
	assert.Nil(t, products.form)
	assert.False(t, products.fetching)
	require.NotNil(t, d.model.toast)
	assert.Equal(t, "Failed to fetch product", d.model.toast.text)
}

func TestProductForm_Parse(t *testing.T) {
	tests := []struct {
		name    string
		field   formField
		value   string
		wantErr string
	}{
		{name: "negative price", field: fieldPrice, value: "-1", wantErr: "price must be a number of zero or more"},
		{name: "unknown type", field: fieldType, value: "ebook", wantErr: `unknown product type "ebook"`},
		{name: "bad flag", field: fieldActive, value: "maybe", wantErr: `expected y or n, got "maybe"`},
		{name: "upper case type", field: fieldType, value: "Voucher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductForm(nil)
			f.inputs[fieldPrice].SetValue("1")
			f.inputs[tt.field].SetValue(tt.value)

			draft, err := f.parse()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.ProductTypeVoucher, draft.productType)
		})
	}
}
