package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"ims-backend/config"
	"ims-backend/models"
)

// CreateProduct handles creating a new catalog product.
func CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if product.Qty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must not be negative"})
		return
	}

	result, err := config.DB.Exec(`
		INSERT INTO product (category, supplier, name, price, qty, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		product.Category, product.Supplier, product.Name,
		product.Price, product.Qty, product.Status,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	product.ID = int(id)

	c.JSON(http.StatusCreated, product)
}

// ListProducts retrieves all catalog products.
func ListProducts(c *gin.Context) {
	rows, err := config.DB.Query(`
		SELECT pid, category, supplier, name, price, qty, status FROM product ORDER BY pid`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Supplier, &p.Name, &p.Price, &p.Qty, &p.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID retrieves a product by ID.
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	err := config.DB.QueryRow(`
		SELECT pid, category, supplier, name, price, qty, status FROM product WHERE pid = ?`, id).
		Scan(&product.ID, &product.Category, &product.Supplier, &product.Name,
			&product.Price, &product.Qty, &product.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles updating an existing product's catalog fields. The
// quantity is not updatable here; stock only moves through reconciliation.
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := config.DB.Exec(`
		UPDATE product SET category = ?, supplier = ?, name = ?, price = ?, status = ?
		WHERE pid = ?`,
		product.Category, product.Supplier, product.Name, product.Price, product.Status, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct handles deleting a product.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	_, err := config.DB.Exec("DELETE FROM product WHERE pid = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
